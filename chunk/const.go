package chunk

// packageName is used for debug and error messages
const packageName = "chunk"

// DirSuffix is appended to the source file name to build the chunk directory name.
// Example: report.csv -> report.csv-split
const DirSuffix = "-split"

// Separator joins the name segments (base name, DirSuffix, sequence index).
const Separator = "-"

// JoinedPrefix is placed in front of the base name of a joined file.
// Example: report.csv -> joined-report.csv
const JoinedPrefix = "joined-"

// MinSplitSize is the smallest usable split size in bytes.
// With a limit of 1 byte the planner could never produce chunks below the limit.
const MinSplitSize = 2
