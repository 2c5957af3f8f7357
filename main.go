package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tatterwing/lootkit/conf"
	"github.com/tatterwing/lootkit/partition"
	"github.com/tatterwing/lootkit/persist"
	"github.com/tatterwing/lootkit/probe"
	"github.com/tatterwing/lootkit/util/cli"
	"github.com/tatterwing/lootkit/util/errors"
	"github.com/tatterwing/lootkit/util/log"
	"github.com/tatterwing/lootkit/util/netutil"
)

func main() {
	args := cli.Parse()
	config, err := conf.Parse(args.ConfigFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	if config.Misc.VerboseLog {
		log.SetVerbose(true)
	}

	if args.Slots {
		err = listSlots(config.Snapshot)
		if err != nil {
			log.Fatal("fail to list the snapshot slots", err)
		}
		return
	}

	if config.Misc.ReleaseURL != "" {
		newer, latest, err := checkForUpdate(netutil.HTTPClient(&http.Transport{}),
			cli.VersionWithVPrefix(), config.Misc.ReleaseURL)
		if err != nil {
			log.InfoWithError("skip the release version check", err)
		} else if newer {
			log.Info("a newer lootkit release is available", "version", latest)
		}
	}

	results := runRolls(config.Rolls)
	if config.Snapshot != nil {
		saveSnapshot(config.Snapshot, results)
	}
	if config.Probe != nil {
		runProbes(config.Probe)
	}
}

func runRolls(rolls []conf.Roll) map[string][]int {
	splitter := partition.New()
	results := make(map[string][]int, len(rolls))
	for _, roll := range rolls {
		buckets, err := splitter.Split(partition.Request{
			Total:        roll.Total,
			MinPerBucket: roll.MinPerBucket,
			MaxPerBucket: roll.MaxPerBucket,
			BucketCount:  roll.BucketCount,
		})
		switch {
		case errors.Is(err, partition.ErrInfeasible):
			log.WarnWithError("roll cannot reach its total within the band", err, "name", roll.Name, "buckets", buckets)
		case err != nil:
			log.Fatal("fail to run the roll", err, "name", roll.Name)
		default:
			log.Info("roll", "name", roll.Name, "buckets", buckets)
		}
		results[roll.Name] = buckets
	}
	return results
}

func saveSnapshot(snapshotConf *conf.Snapshot, results map[string][]int) {
	var key []byte
	if snapshotConf.Key != nil {
		key = snapshotConf.Key.Raw
	}
	snap, err := persist.Save(snapshotConf.File, results, key)
	if err != nil {
		log.Fatal("fail to save the rolls snapshot", err, "file", snapshotConf.File)
	}
	log.Info("saved the rolls snapshot", "file", snapshotConf.File, "id", snap.ID)

	if snapshotConf.IndexFile == "" {
		return
	}
	index, err := persist.OpenIndex(snapshotConf.IndexFile)
	if err != nil {
		log.Fatal("fail to open the snapshot index", err, "file", snapshotConf.IndexFile)
	}
	defer index.Close()
	err = index.Record(snap, snapshotConf.File)
	if err != nil {
		log.Fatal("fail to record the snapshot in the index", err, "file", snapshotConf.IndexFile)
	}
}

func listSlots(snapshotConf *conf.Snapshot) error {
	if snapshotConf == nil || snapshotConf.IndexFile == "" {
		return errors.New("no snapshot index file is configured")
	}
	index, err := persist.OpenIndex(snapshotConf.IndexFile)
	if err != nil {
		return err
	}
	defer index.Close()
	slots, err := index.Slots()
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		log.Info("no snapshot slots recorded", "file", snapshotConf.IndexFile)
		return nil
	}
	for _, slot := range slots {
		log.Info("slot", "name", slot.Name, "id", slot.ID,
			"created", slot.CreatedAt.Format(time.RFC3339),
			"encrypted", slot.Encrypted, "checksum", slot.Checksum)
	}
	return nil
}

func checkForUpdate(client *http.Client, current, releaseURL string) (bool, string, error) {
	latest, err := probe.LatestVersion(client, releaseURL)
	if err != nil {
		return false, "", err
	}
	newer, err := probe.UpdateAvailable(current, latest)
	if err != nil {
		return false, "", err
	}
	return newer, latest, nil
}
