package cshim

/*
#include <stdint.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/vilunov/goposit/posit"
)

// lastError holds the most recent handle-lookup failure, the one error case
// this boundary has: bad input from a C caller the Go API never has to
// think about. C ABIs cannot panic or return a Go error, so callers poll
// this instead.
var lastErrorMu sync.Mutex
var lastError string

func setLastError(err error) {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	if err == nil {
		lastError = ""
		return
	}
	lastError = err.Error()
}

//export posit_last_error
func posit_last_error() *C.char {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return C.CString(lastError)
}

//export posit_new
func posit_new(bits *C.uint8_t, length C.int) C.uintptr_t {
	n := int(length)
	raw := make([]byte, n)
	if n > 0 && bits != nil {
		src := (*[1 << 30]C.uint8_t)(unsafe.Pointer(bits))[:n:n]
		for i := 0; i < n; i++ {
			raw[i] = byte(src[i])
		}
	}
	p := posit.FromBits(raw...)
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(p))
}

//export posit_zero
func posit_zero() C.uintptr_t {
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(posit.Zero()))
}

//export posit_nar
func posit_nar() C.uintptr_t {
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(posit.NaR()))
}

//export posit_free
func posit_free(h C.uintptr_t) {
	globalRegistry.free(uintptr(h))
	setLastError(nil)
}

//export posit_neg
func posit_neg(h C.uintptr_t) C.uintptr_t {
	p, err := globalRegistry.get(uintptr(h))
	if err != nil {
		setLastError(err)
		return 0
	}
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(p.Neg()))
}

//export posit_abs
func posit_abs(h C.uintptr_t) C.uintptr_t {
	p, err := globalRegistry.get(uintptr(h))
	if err != nil {
		setLastError(err)
		return 0
	}
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(p.Abs()))
}

func binaryOp(ha, hb C.uintptr_t, op func(a, b posit.Posit) posit.Posit) C.uintptr_t {
	a, err := globalRegistry.get(uintptr(ha))
	if err != nil {
		setLastError(err)
		return 0
	}
	b, err := globalRegistry.get(uintptr(hb))
	if err != nil {
		setLastError(err)
		return 0
	}
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(op(a, b)))
}

//export posit_add
func posit_add(ha, hb C.uintptr_t) C.uintptr_t { return binaryOp(ha, hb, posit.Add) }

//export posit_sub
func posit_sub(ha, hb C.uintptr_t) C.uintptr_t { return binaryOp(ha, hb, posit.Sub) }

//export posit_mul
func posit_mul(ha, hb C.uintptr_t) C.uintptr_t { return binaryOp(ha, hb, posit.Mul) }

//export posit_div
func posit_div(ha, hb C.uintptr_t) C.uintptr_t { return binaryOp(ha, hb, posit.Div) }

//export posit_from_double
func posit_from_double(x C.double) C.uintptr_t {
	setLastError(nil)
	return C.uintptr_t(globalRegistry.put(posit.FromDouble(float64(x))))
}

//export posit_bits_len
func posit_bits_len(h C.uintptr_t) C.int {
	p, err := globalRegistry.get(uintptr(h))
	if err != nil {
		setLastError(err)
		return -1
	}
	setLastError(nil)
	return C.int(len(p.Bits()))
}

//export posit_bits_get
func posit_bits_get(h C.uintptr_t, out *C.uint8_t, capacity C.int) C.int {
	p, err := globalRegistry.get(uintptr(h))
	if err != nil {
		setLastError(err)
		return -1
	}
	bits := p.Bits()
	n := len(bits)
	if n > int(capacity) {
		n = int(capacity)
	}
	if out != nil && n > 0 {
		dst := (*[1 << 30]C.uint8_t)(unsafe.Pointer(out))[:n:n]
		for i := 0; i < n; i++ {
			dst[i] = C.uint8_t(bits[i])
		}
	}
	setLastError(nil)
	return C.int(len(bits))
}
