package countish

import "unsafe"

const (
	sizeofString = int(unsafe.Sizeof(""))
	sizeofInt    = int(unsafe.Sizeof(int(0)))
	sizeofUInt64 = int(unsafe.Sizeof(uint64(0)))
	sizeofFDelta = int(unsafe.Sizeof(FDelta{}))

	sizeofStringUInt64Map = int(unsafe.Sizeof(map[string]uint64{}))
	sizeofStringFDeltaMap = int(unsafe.Sizeof(map[string]*FDelta{}))

	sizeofNaiveStruct  = int(unsafe.Sizeof(Naive{}))
	sizeofLossyStruct  = int(unsafe.Sizeof(Lossy{}))
	sizeofStickyStruct = int(unsafe.Sizeof(Sticky{}))
)
