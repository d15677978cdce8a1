package core

// packageName is used for debug and error messages
const packageName = "core"

// ChunkFileMode is the permission of new chunk and joined files (before umask).
const ChunkFileMode = 0666

// ChunkDirMode is the permission of new chunk directories (before umask).
const ChunkDirMode = 0777

// writeBufferSize is the buffer size of the joined file writer.
const writeBufferSize = 1024 * 1024 // 1 MB
