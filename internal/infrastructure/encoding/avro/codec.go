package avro

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/linkedin/goavro/v2"
)

// Codec wraps a goavro codec for thread-safe encoding and decoding.
type Codec struct {
	codec *goavro.Codec
	mu    sync.Mutex
}

// NewCodec builds a codec from an Avro schema string.
func NewCodec(schema string) (*Codec, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("create avro codec: %w", err)
	}
	return &Codec{codec: codec}, nil
}

// EncodeJSON converts a JSON object to Avro binary.
func (c *Codec) EncodeJSON(jsonData []byte) ([]byte, error) {
	var native interface{}
	if err := json.Unmarshal(jsonData, &native); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}

	if _, ok := native.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("json data must be an object to match an avro record")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	binary, err := c.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encode avro binary: %w", err)
	}
	return binary, nil
}

// DecodeJSON converts Avro binary back to JSON.
func (c *Codec) DecodeJSON(binary []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	native, _, err := c.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("decode avro binary: %w", err)
	}

	jsonData, err := json.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("marshal native: %w", err)
	}
	return jsonData, nil
}
