package rawvol

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// PackCompression indicates the compression used for the pack content section.
type PackCompression uint8

const (
	PackCompNone PackCompression = 0
	PackCompZlib PackCompression = 1
	PackCompZstd PackCompression = 2
)

const (
	packMagicStr = "RAWVPACK"
	packVersion1 = 1
)

// PackEntry is one raw volume inside a pack: its name, sidecar and
// serialized payload, plus an xxhash64 digest of the payload.
type PackEntry struct {
	Name    string
	Meta    Metadata
	Payload []byte
	Digest  uint64
}

// Pack bundles several generated volumes into one file.
type Pack struct {
	Entries []PackEntry
}

// Add appends a volume to the pack, serializing it and computing its digest.
func (p *Pack) Add(name string, vol *Volume, spacing [3]float64, description string) {
	payload := vol.Serialize()
	p.Entries = append(p.Entries, PackEntry{
		Name:    name,
		Meta:    MetadataFor(vol, spacing, description),
		Payload: payload,
		Digest:  xxhash.Sum64(payload),
	})
}

// Marshal encodes the pack with the given compression codec.
func (p *Pack) Marshal(comp PackCompression) ([]byte, error) {
	var content bytes.Buffer
	_ = binary.Write(&content, binary.LittleEndian, uint32(len(p.Entries)))
	for _, e := range p.Entries {
		nb := []byte(e.Name)
		if len(nb) > 0xFFFF {
			return nil, fmt.Errorf("entry name too long: %s", e.Name)
		}
		mb, err := json.Marshal(e.Meta)
		if err != nil {
			return nil, err
		}
		_ = binary.Write(&content, binary.LittleEndian, uint16(len(nb)))
		_, _ = content.Write(nb)
		_ = binary.Write(&content, binary.LittleEndian, uint32(len(mb)))
		_, _ = content.Write(mb)
		_ = binary.Write(&content, binary.LittleEndian, uint32(len(e.Payload)))
		_, _ = content.Write(e.Payload)
		_ = binary.Write(&content, binary.LittleEndian, xxhash.Sum64(e.Payload))
	}

	var finalContent []byte
	switch comp {
	case PackCompNone:
		finalContent = content.Bytes()
	case PackCompZlib:
		var buf bytes.Buffer
		zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if _, err := zw.Write(content.Bytes()); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		finalContent = buf.Bytes()
	case PackCompZstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		finalContent = enc.EncodeAll(content.Bytes(), nil)
	default:
		return nil, fmt.Errorf("unsupported compression: %d", comp)
	}

	var out bytes.Buffer
	out.WriteString(packMagicStr)
	_ = binary.Write(&out, binary.LittleEndian, uint8(packVersion1))
	_ = binary.Write(&out, binary.LittleEndian, uint8(comp))
	_, _ = out.Write(finalContent)
	return out.Bytes(), nil
}

// UnmarshalPack parses a pack from bytes, verifying every entry digest,
// and returns the pack and the compression it was stored with.
func UnmarshalPack(data []byte) (*Pack, PackCompression, error) {
	if len(data) < 10 || string(data[:8]) != packMagicStr {
		return nil, 0, fmt.Errorf("not a valid volume pack")
	}
	version := data[8]
	if version != packVersion1 {
		return nil, 0, fmt.Errorf("unsupported pack version: %d", version)
	}
	comp := PackCompression(data[9])
	contentBytes := data[10:]
	switch comp {
	case PackCompNone:
		// no-op
	case PackCompZlib:
		zr, err := zlib.NewReader(bytes.NewReader(contentBytes))
		if err != nil {
			return nil, 0, err
		}
		defer zr.Close()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, 0, err
		}
		contentBytes = b
	case PackCompZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, 0, err
		}
		defer dec.Close()
		b, err := dec.DecodeAll(contentBytes, nil)
		if err != nil {
			return nil, 0, err
		}
		contentBytes = b
	default:
		return nil, 0, fmt.Errorf("unsupported compression type: %d", comp)
	}

	r := bytes.NewReader(contentBytes)
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, 0, err
	}
	pack := &Pack{Entries: make([]PackEntry, n)}
	for i := uint32(0); i < n; i++ {
		var nameLen uint16
		if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
			return nil, 0, err
		}
		nameBytes := make([]byte, nameLen)
		if _, err := io.ReadFull(r, nameBytes); err != nil {
			return nil, 0, err
		}
		var metaLen uint32
		if err := binary.Read(r, binary.LittleEndian, &metaLen); err != nil {
			return nil, 0, err
		}
		metaBytes := make([]byte, metaLen)
		if _, err := io.ReadFull(r, metaBytes); err != nil {
			return nil, 0, err
		}
		var meta Metadata
		if err := json.Unmarshal(metaBytes, &meta); err != nil {
			return nil, 0, fmt.Errorf("entry %s: bad metadata: %w", nameBytes, err)
		}
		var plen uint32
		if err := binary.Read(r, binary.LittleEndian, &plen); err != nil {
			return nil, 0, err
		}
		payload := make([]byte, plen)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, 0, err
		}
		var digest uint64
		if err := binary.Read(r, binary.LittleEndian, &digest); err != nil {
			return nil, 0, err
		}
		if got := xxhash.Sum64(payload); got != digest {
			return nil, 0, fmt.Errorf("entry %s: payload digest mismatch", nameBytes)
		}
		if want, err := meta.ByteSize(); err != nil || want != len(payload) {
			return nil, 0, fmt.Errorf("entry %s: payload length %d does not match metadata", nameBytes, plen)
		}
		pack.Entries[i] = PackEntry{Name: string(nameBytes), Meta: meta, Payload: payload, Digest: digest}
	}
	return pack, comp, nil
}

// CreatePack reads raw+sidecar pairs and writes a pack to outputFile.
func CreatePack(rawPaths []string, outputFile string, comp PackCompression) error {
	if len(rawPaths) == 0 {
		return fmt.Errorf("no .raw files provided")
	}
	var pack Pack
	for _, path := range rawPaths {
		vol, meta, err := LoadVolume(path)
		if err != nil {
			return err
		}
		pack.Add(filepath.Base(path), vol, meta.Spacing, meta.Description)
	}
	data, err := pack.Marshal(comp)
	if err != nil {
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}

// UnpackPack expands a pack file into raw+sidecar pairs under outDir.
func UnpackPack(packFile, outDir string) error {
	data, err := os.ReadFile(packFile)
	if err != nil {
		return err
	}
	pack, _, err := UnmarshalPack(data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, e := range pack.Entries {
		rawPath := filepath.Join(outDir, e.Name)
		if err := os.WriteFile(rawPath, e.Payload, 0644); err != nil {
			return err
		}
		if err := WriteMetadata(e.Meta, SidecarPath(rawPath)); err != nil {
			return err
		}
	}
	return nil
}
