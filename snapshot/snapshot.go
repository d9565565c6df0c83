// Package snapshot persists and loads dataset statistics snapshots.
//
// A snapshot blob is self-describing:
//
//	[magic "STVW"][version uint8][codec name len uint8][codec name]
//	[compression uint8][uncompressed size uint32][payload]
//
// The payload is the codec-encoded stats.DatasetFeatureStatistics,
// optionally LZ4- or ZSTD-compressed. An incompressible payload falls
// back to being stored uncompressed.
package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/statview/blobstore"
	"github.com/hupe1980/statview/codec"
	"github.com/hupe1980/statview/stats"
)

// Compression defines the compression algorithm used for the payload.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

var (
	// ErrBadMagic is returned when a blob is not a statistics snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnknownCodec is returned when a snapshot was written with a
	// codec this build does not know.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrUnknownCompression is returned for an unknown compression tag.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrCorrupt is returned when the payload does not match the header.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
)

var magic = [4]byte{'S', 'T', 'V', 'W'}

const formatVersion = 1

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Save encodes data and writes it to store under name.
func Save(ctx context.Context, store blobstore.Store, name string, data *stats.DatasetFeatureStatistics, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := o.codec.Marshal(data)
	if err != nil {
		return fmt.Errorf("snapshot: encode %q: %w", name, err)
	}

	compression := o.compression
	compressed := payload
	switch compression {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, buf, nil)
		if err != nil {
			return fmt.Errorf("snapshot: lz4 compress %q: %w", name, err)
		}
		if n == 0 {
			// Incompressible, store raw.
			compression = CompressionNone
		} else {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(payload, nil)
		putZstdEncoder(enc)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}

	codecName := o.codec.Name()
	blob := make([]byte, 0, 4+1+1+len(codecName)+1+4+len(compressed))
	blob = append(blob, magic[:]...)
	blob = append(blob, formatVersion)
	blob = append(blob, byte(len(codecName)))
	blob = append(blob, codecName...)
	blob = append(blob, byte(compression))
	blob = binary.LittleEndian.AppendUint32(blob, uint32(len(payload)))
	blob = append(blob, compressed...)

	return store.Put(ctx, name, blob)
}

// Load reads the snapshot blob under name and decodes it. The codec is
// selected by the name recorded in the blob header.
func Load(ctx context.Context, store blobstore.Store, name string, opts ...Option) (*stats.DatasetFeatureStatistics, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()

	rc, err := store.Open(ctx, name)
	if err != nil {
		o.metrics.RecordSnapshotLoad(0, time.Since(start), err)
		return nil, err
	}
	defer rc.Close()

	blob, err := io.ReadAll(rc)
	if err != nil {
		err = fmt.Errorf("snapshot: read %q: %w", name, err)
		o.metrics.RecordSnapshotLoad(int64(len(blob)), time.Since(start), err)
		return nil, err
	}

	data, err := Decode(blob)
	o.metrics.RecordSnapshotLoad(int64(len(blob)), time.Since(start), err)
	return data, err
}

// Decode decodes a snapshot blob.
func Decode(blob []byte) (*stats.DatasetFeatureStatistics, error) {
	if len(blob) < 6 || [4]byte(blob[:4]) != magic {
		return nil, ErrBadMagic
	}
	if blob[4] != formatVersion {
		return nil, fmt.Errorf("snapshot: unsupported version %d", blob[4])
	}
	nameLen := int(blob[5])
	if len(blob) < 6+nameLen+5 {
		return nil, ErrCorrupt
	}
	codecName := string(blob[6 : 6+nameLen])
	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codecName)
	}

	rest := blob[6+nameLen:]
	compression := Compression(rest[0])
	uncompressedSize := binary.LittleEndian.Uint32(rest[1:5])
	compressed := rest[5:]

	var payload []byte
	switch compression {
	case CompressionNone:
		payload = compressed
	case CompressionLZ4:
		payload = make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(compressed, payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4 decompress: %w", err)
		}
		payload = payload[:n]
	case CompressionZSTD:
		dec := getZstdDecoder()
		payload, err := dec.DecodeAll(compressed, nil)
		putZstdDecoder(dec)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd decompress: %w", err)
		}
		return unmarshal(c, payload, uncompressedSize)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, compression)
	}

	return unmarshal(c, payload, uncompressedSize)
}

func unmarshal(c codec.Codec, payload []byte, uncompressedSize uint32) (*stats.DatasetFeatureStatistics, error) {
	if len(payload) != int(uncompressedSize) {
		return nil, ErrCorrupt
	}
	var data stats.DatasetFeatureStatistics
	if err := c.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return &data, nil
}
