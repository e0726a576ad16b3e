package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/tidwall/buntdb"

	"github.com/bouchenineyakoub/clipfiles/filelist"
)

func cacheDBFilePath() string {
	cacheDir := filepath.Join(xdg.CacheHome, "clipfiles")
	_, err := os.Stat(cacheDir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cacheDir, 0o755)
		if err != nil {
			logger.Warn("could not create cache directory", "dir", cacheDir, "err", err)
		}
	}

	return filepath.Join(cacheDir, "statcache.db")
}

// classifyStat picks the metadata source for record classification: plain
// os.Stat, or the TTL cache when enabled. The returned closer must be called
// once classification is done.
func classifyStat() (filelist.StatFunc, func()) {
	if !config.Cache.Enabled {
		return filelist.OSStat, func() {}
	}

	ttl := time.Duration(config.Cache.TTLSeconds) * time.Second
	stat, closer, err := cachedStat(filelist.OSStat, ttl)
	if err != nil {
		logger.Warn("stat cache unavailable, falling back to os.Stat", "err", err)
		return filelist.OSStat, func() {}
	}
	return stat, closer
}

func cachedStat(base filelist.StatFunc, ttl time.Duration) (filelist.StatFunc, func(), error) {
	return cachedStatAt(cacheDBFilePath(), base, ttl)
}

// cachedStatAt wraps base with a buntdb-backed TTL cache keyed by path.
// Worthwhile when the copied files live on slow network shares. Stat failures
// are never cached; the next call asks the filesystem again.
func cachedStatAt(dbPath string, base filelist.StatFunc, ttl time.Duration) (filelist.StatFunc, func(), error) {
	db, err := buntdb.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	closer := func() { _ = db.Close() }

	stat := func(path string) (bool, int64, error) {
		var cached string
		err := db.View(func(tx *buntdb.Tx) error {
			val, err := tx.Get(path)
			if err != nil {
				return err
			}
			cached = val
			return nil
		})
		if err == nil {
			if isDir, size, ok := decodeStatValue(cached); ok {
				logger.Debug("stat cache hit", "path", path)
				return isDir, size, nil
			}
		}

		isDir, size, statErr := base(path)
		if statErr != nil {
			return false, 0, statErr
		}

		err = db.Update(func(tx *buntdb.Tx) error {
			_, _, err := tx.Set(path, encodeStatValue(isDir, size), &buntdb.SetOptions{Expires: true, TTL: ttl})
			return err
		})
		if err != nil {
			logger.Warn("stat cache update failed", "path", path, "err", err)
		}
		return isDir, size, nil
	}

	return stat, closer, nil
}

func encodeStatValue(isDir bool, size int64) string {
	if isDir {
		return "d:0"
	}
	return "f:" + strconv.FormatInt(size, 10)
}

func decodeStatValue(val string) (isDir bool, size int64, ok bool) {
	kind, rest, found := strings.Cut(val, ":")
	if !found {
		return false, 0, false
	}
	switch kind {
	case "d":
		return true, 0, true
	case "f":
		size, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return false, 0, false
		}
		return false, size, true
	}
	return false, 0, false
}
