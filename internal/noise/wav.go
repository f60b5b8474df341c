package noise

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	wavHeaderSize = 44
	formatPCM     = 1
	bitsPerSample = 16
	numChannels   = 1
)

// wavHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type wavHeader struct {
	RIFF          [4]byte
	ChunkSize     uint32
	WAVE          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// EncodeWAV writes pcm as a mono 16-bit little-endian WAV stream.
func EncodeWAV(w io.Writer, pcm []int16, sampleRate int) error {
	const blockAlign = numChannels * bitsPerSample / 8
	if sampleRate <= 0 || int64(sampleRate)*blockAlign > math.MaxUint32 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParams, sampleRate)
	}
	dataSize := uint64(len(pcm)) * blockAlign
	if dataSize > math.MaxUint32-(wavHeaderSize-8) {
		return fmt.Errorf("%w: %d samples exceed the WAV size limit", ErrInvalidParams, len(pcm))
	}

	h := wavHeader{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(wavHeaderSize - 8 + dataSize),
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   formatPCM,
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(dataSize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("write wav samples: %w", err)
	}
	return nil
}
