package model

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockNumber is a block height rendered as lowercase hex without the 0x prefix.
type BlockNumber uint64

// String returns the hex form used on the wire.
func (b BlockNumber) String() string {
	return strconv.FormatUint(uint64(b), 16)
}

// MarshalText implements encoding.TextMarshaler.
func (b BlockNumber) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts hex with or without the 0x prefix.
func (b *BlockNumber) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(string(text))), "0x")
	if s == "" {
		return fmt.Errorf("empty block number")
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("parse block number %q: %w", string(text), err)
	}
	*b = BlockNumber(v)
	return nil
}
