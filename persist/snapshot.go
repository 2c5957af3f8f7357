// Package persist saves game state as binary-wrapped JSON: a fixed header
// carrying a snapshot id and a BLAKE3 checksum, followed by the JSON payload,
// optionally sealed with ChaCha20-Poly1305.
package persist

import (
	"encoding/binary"
	"encoding/json"

	"github.com/google/uuid"
	pool "github.com/libp2p/go-buffer-pool"
	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/ioutil"
	"github.com/tatterwing/lootkit/util/randutil"
	"golang.org/x/crypto/chacha20poly1305"
	"lukechampine.com/blake3"
)

const (
	formatVersion = 1
	flagEncrypted = 1 << 0

	// magic + version + id + flags + checksum + payload length
	headerSize = 4 + 1 + 16 + 1 + 32 + 4
)

var magic = [4]byte{'l', 'k', 's', 'n'}

var (
	ErrBadFormat = errors.New("not a lootkit snapshot file")
	ErrChecksum  = errors.New("snapshot payload does not match its checksum")
	ErrNeedKey   = errors.New("snapshot is encrypted and needs a key")
)

type Snapshot struct {
	ID uuid.UUID
	// Checksum is over the JSON payload before encryption.
	Checksum  [32]byte
	Encrypted bool
}

// Save marshals v and writes it to filePath. A non-nil key must be
// chacha20poly1305.KeySize bytes and seals the payload.
func Save(filePath string, v any, key []byte) (*Snapshot, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	snap := &Snapshot{ID: uuid.New(), Checksum: blake3.Sum256(payload), Encrypted: key != nil}
	if key != nil {
		payload, err = seal(payload, key)
		if err != nil {
			return nil, err
		}
	}

	bs := pool.Get(headerSize + len(payload))
	defer pool.Put(bs)
	copy(bs, magic[:])
	bs[4] = formatVersion
	copy(bs[5:21], snap.ID[:])
	var flags byte
	if snap.Encrypted {
		flags |= flagEncrypted
	}
	bs[21] = flags
	copy(bs[22:54], snap.Checksum[:])
	binary.BigEndian.PutUint32(bs[54:headerSize], uint32(len(payload)))
	copy(bs[headerSize:], payload)

	err = ioutil.WriteFile(filePath, bs)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Load reads a snapshot from filePath into v, verifying the checksum after
// any decryption.
func Load(filePath string, v any, key []byte) (*Snapshot, error) {
	bs, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if len(bs) < headerSize || [4]byte(bs[:4]) != magic {
		return nil, errors.Wrapf(ErrBadFormat, "%v", filePath)
	}
	if bs[4] != formatVersion {
		return nil, errors.Wrapf(ErrBadFormat, "unsupported snapshot version %v", bs[4])
	}

	snap := &Snapshot{}
	copy(snap.ID[:], bs[5:21])
	snap.Encrypted = bs[21]&flagEncrypted != 0
	copy(snap.Checksum[:], bs[22:54])
	payloadLen := binary.BigEndian.Uint32(bs[54:headerSize])
	payload := bs[headerSize:]
	if int(payloadLen) != len(payload) {
		return nil, errors.Wrapf(ErrBadFormat, "header says %v payload byte(s) but %v remain", payloadLen, len(payload))
	}

	if snap.Encrypted {
		if key == nil {
			return nil, errors.Wrapf(ErrNeedKey, "%v", filePath)
		}
		payload, err = open(payload, key)
		if err != nil {
			return nil, err
		}
	}
	if blake3.Sum256(payload) != snap.Checksum {
		return nil, errors.Wrapf(ErrChecksum, "%v", filePath)
	}
	err = json.Unmarshal(payload, v)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return snap, nil
}

func seal(payload, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	nonce, err := randutil.RandNBytes(chacha20poly1305.NonceSize)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, payload, nil), nil
}

func open(payload, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(payload) < chacha20poly1305.NonceSize {
		return nil, errors.Wrap(ErrBadFormat, "encrypted payload is too short")
	}
	return errors.WithStack2(aead.Open(nil, payload[:chacha20poly1305.NonceSize], payload[chacha20poly1305.NonceSize:], nil))
}
