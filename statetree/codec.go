package statetree

import (
	"bytes"
	"fmt"

	msgpack "github.com/vmihailenco/msgpack/v5"
)

// EncodeSnapshot serializes the instance's snapshot.
func EncodeSnapshot(i *Instance) ([]byte, error) {
	enc := msgpack.GetEncoder()
	var buf bytes.Buffer
	enc.Reset(&buf)
	defer msgpack.PutEncoder(enc)

	if err := enc.Encode(i.Snapshot()); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeSnapshot deserializes snapshot data produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (map[string]any, error) {
	dec := msgpack.GetDecoder()
	dec.Reset(bytes.NewReader(data))
	defer msgpack.PutDecoder(dec)

	var snap map[string]any
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snap, nil
}
