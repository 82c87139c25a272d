package parser

import (
	"bufio"
	"io"
	"sync"
)

const (
	// Buffer pool sizes
	scannerBufferSize    = 64 * 1024       // 64KB per scanner
	maxScannerBufferSize = 4 * 1024 * 1024 // 4MB max

	// Most templates are a few dozen rows
	defaultRowCapacity = 32
	maxRetainRows      = 1024
)

// scannerPool holds scanner buffers between parses. Buffers that grew past
// maxScannerBufferSize or shrank below half the default are not returned.
var scannerPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, scannerBufferSize)
		return &buf
	},
}

// rowPool holds the row slices Parse collects lines into
var rowPool = sync.Pool{
	New: func() interface{} {
		s := make([]string, 0, defaultRowCapacity)
		return &s
	},
}

func acquireScannerBuffer() []byte {
	bufPtr, ok := scannerPool.Get().(*[]byte)
	if !ok {
		return make([]byte, 0, scannerBufferSize)
	}
	return (*bufPtr)[:0]
}

func releaseScannerBuffer(buf []byte) {
	if buf == nil || cap(buf) < scannerBufferSize/2 {
		return
	}
	if cap(buf) <= maxScannerBufferSize {
		buf = buf[:0]
		scannerPool.Put(&buf)
	}
}

// createPooledScanner creates a scanner with a pooled buffer
func createPooledScanner(r io.Reader) (*bufio.Scanner, []byte) {
	scanner := bufio.NewScanner(r)
	buf := acquireScannerBuffer()
	scanner.Buffer(buf, maxScannerBufferSize)
	return scanner, buf
}

func acquireRowSlice() []string {
	slicePtr, ok := rowPool.Get().(*[]string)
	if !ok {
		return make([]string, 0, defaultRowCapacity)
	}
	return (*slicePtr)[:0]
}

// releaseRowSlice clears row references and returns the slice to the pool.
func releaseRowSlice(slice []string) {
	if slice == nil || cap(slice) > maxRetainRows {
		return
	}
	for i := range slice {
		slice[i] = ""
	}
	slice = slice[:0]
	rowPool.Put(&slice)
}
