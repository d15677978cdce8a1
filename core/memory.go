package core

import (
	"github.com/mackerelio/go-osstat/memory"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"log"
)

// memoryStats is replaced in tests.
var memoryStats = memory.Get

// checkFreeMemory logs a warning if the free memory is too small for a buffer of bufSize bytes.
// The split continues in any case (soft fail).
// It returns false if a warning was logged.
func checkFreeMemory(bufSize int64, debug bool) bool {
	mem, err := memoryStats()
	if err != nil {
		if debug {
			log.Printf("DEBUG: %s/checkFreeMemory: no memory stats: %v", packageName, err)
		}
		return true // unknown -> no warning
	}

	// buffer + 20% is needed
	limit := uint64(float64(bufSize) * 1.2)
	if mem.Free >= limit {
		return true // OK
	}

	p := message.NewPrinter(language.English)
	log.Printf("WARNING: %s/checkFreeMemory: not enough free memory for the chunk buffer!", packageName)
	log.Print(p.Sprintf("WARNING: %s/checkFreeMemory: memory free: %d bytes, chunk buffer: %d bytes", packageName, mem.Free, bufSize))
	return false
}
