package editor

import "github.com/blockpress/headline/block"

// ChangeEvent reports an edit that changed the block's saved payload.
type ChangeEvent struct {
	Version uint64
	Data    block.Data
}
