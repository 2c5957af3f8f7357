package conf

import (
	"encoding/hex"
	"encoding/json"

	"github.com/tatterwing/lootkit/util/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

type Config struct {
	Rolls    []Roll    `json:"rolls" validate:"dive"`
	Snapshot *Snapshot `json:"snapshot"`
	Probe    *Probe    `json:"probe"`
	Misc     Misc      `json:"misc"`
}

// Roll is one partition request: distribute Total across BucketCount shares
// inside the [MinPerBucket, MaxPerBucket] band.
type Roll struct {
	Name         string `json:"name" validate:"required"`
	Total        int    `json:"total" validate:"gte=0"`
	MinPerBucket int    `json:"min-per-bucket"`
	MaxPerBucket int    `json:"max-per-bucket" validate:"gtefield=MinPerBucket"`
	BucketCount  int    `json:"bucket-count" validate:"gt=0"`
}

type Snapshot struct {
	File      string `json:"file" validate:"required"`
	IndexFile string `json:"index-file"`
	Key       *Key   `json:"key"`
}

type Key struct {
	Raw    []byte
	String string
}

type Probe struct {
	URLs           []string `json:"urls" validate:"dive,url"`
	HTTP3          bool     `json:"http3"`
	SkipPrivate    bool     `json:"skip-private"`
	TimeoutSeconds int      `json:"timeout-seconds" validate:"gte=0"`
}

type Misc struct {
	// ReleaseURL points at a GitHub-style latest-release document; when set,
	// startup logs whether a newer release than the running one exists.
	ReleaseURL string `json:"release-url" validate:"omitempty,url"`
	VerboseLog bool   `json:"verbose-log"`
}

const defaultProbeTimeoutSeconds = 10

func (probe *Probe) UnmarshalJSON(data []byte) error {
	// https://stackoverflow.com/a/41102996
	type ProbeAlias Probe
	probeAlias := (*ProbeAlias)(probe)
	probeAlias.TimeoutSeconds = defaultProbeTimeoutSeconds
	return json.Unmarshal(data, probeAlias)
}

func (key *Key) UnmarshalJSON(data []byte) error {
	var keyStr string
	err := json.Unmarshal(data, &keyStr)
	if err != nil {
		return errors.Wrap(err, "fail to parse the 'key' field")
	}

	bs, err := hex.DecodeString(keyStr)
	if err != nil || len(bs) != chacha20poly1305.KeySize {
		return errors.Newf("the snapshot key should be %v hex characters in length", chacha20poly1305.KeySize*2)
	}
	key.Raw = bs
	key.String = keyStr
	return nil
}
