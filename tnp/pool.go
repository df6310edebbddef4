package tnp

import (
	"context"
	"io"

	pool "github.com/jolestar/go-commons-pool"
)

// Scanners are short-lived objects, one per document. To re-use their read
// buffers we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scanner{}, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// newPooledScanner returns a scanner from the pool, reading from input.
// Clients have to call release() when done with it.
func newPooledScanner(input io.Reader) *Scanner {
	o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	if err != nil {
		T().Errorf("cannot borrow scanner from pool: %v", err)
		return NewScanner(input)
	}
	sc := o.(*Scanner)
	sc.reset(input)
	return sc
}

// release clears the scanner and puts it back into the pool.
func (sc *Scanner) release() {
	sc.reset(emptyReader{})
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }
