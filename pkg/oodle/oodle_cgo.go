//go:build cgo && oodle

package oodle

/*
#cgo linux LDFLAGS: -L${SRCDIR}/lib -l:liboo2corelinux64.a -lstdc++ -lm -lpthread
#cgo darwin LDFLAGS: -L${SRCDIR}/lib -loo2coremac64 -lc++
#include <stdint.h>

extern int64_t OodleLZ_Decompress(
    const void* compBuf,
    int64_t compLen,
    void* rawBuf,
    int64_t rawLen,
    int fuzzSafe,
    int checkCRC,
    int verbosity,
    void* decBufBase,
    int64_t decBufSize,
    void* fpCallback,
    void* callbackUserData,
    void* decoderMemory,
    int64_t decoderMemorySize,
    int threadPhase
);
*/
import "C"
import "unsafe"

const available = true

const (
	fuzzSafeYes   = 1
	checkCRCNo    = 0
	verbosityNone = 0
	threadPhase   = 0
)

func decompress(src, dst []byte) (int64, error) {
	n := C.OodleLZ_Decompress(
		unsafe.Pointer(&src[0]),
		C.int64_t(len(src)),
		unsafe.Pointer(&dst[0]),
		C.int64_t(len(dst)),
		fuzzSafeYes,
		checkCRCNo,
		verbosityNone,
		nil,
		0,
		nil,
		nil,
		nil,
		0,
		threadPhase,
	)
	return int64(n), nil
}
