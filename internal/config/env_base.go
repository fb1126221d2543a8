package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/favonia/ddnsp/internal/backend"
	"github.com/favonia/ddnsp/internal/cron"
	"github.com/favonia/ddnsp/internal/pp"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Getenvs reads a multi-line environment variable, one value per non-empty line.
func Getenvs(key string) []string {
	var vals []string
	for _, line := range strings.Split(os.Getenv(key), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			vals = append(vals, line)
		}
	}
	return vals
}

// ReadString reads an environment variable as a plain string.
func ReadString(ppfmt pp.PP, key string, field *string) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, *field)
		return true
	}

	*field = val
	return true
}

// ReadBool reads an environment variable as a boolean value.
func ReadBool(ppfmt pp.PP, key string, field *bool) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%t", key, *field)
		return true
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*field = b
	return true
}

// ReadNonnegInt reads an environment variable as a non-negative integer.
func ReadNonnegInt(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is negative", key, i)
		return false

	default:
		*field = i
		return true
	}
}

// ReadPositiveInt reads an environment variable as a positive integer.
func ReadPositiveInt(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i <= 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is not positive", key, i)
		return false

	default:
		*field = i
		return true
	}
}

// ReadUint32 reads an environment variable as a positive integer that fits in 32 bits.
func ReadUint32(ppfmt pp.PP, key string, field *uint32) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.ParseUint(val, 10, 32)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a 32-bit unsigned number: %v", key, val, err)
		return false

	case i == 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is not positive", key, i)
		return false

	default:
		*field = uint32(i)
		return true
	}
}

// ReadUint8 reads an environment variable as a positive integer that fits in 8 bits.
func ReadUint8(ppfmt pp.PP, key string, field *uint8) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.ParseUint(val, 10, 8)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not an 8-bit unsigned number: %v", key, val, err)
		return false

	case i == 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is not positive", key, i)
		return false

	default:
		*field = uint8(i)
		return true
	}
}

// ReadLinuxID reads an environment variable as a user or group ID.
func ReadLinuxID(ppfmt pp.PP, key string, field *int) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	i, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case i < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) is negative", key, i)
		return false

	case i == 0:
		ppfmt.Noticef(pp.EmojiUserWarning, "%s is 0 (root); the server will keep running as root", key)
		*field = i
		return true

	default:
		*field = i
		return true
	}
}

// ReadTTL reads a TTL in seconds. The value 0 leaves the choice to the DNS provider.
// The upper bound is 2^31-1, following RFC 2181.
func ReadTTL(ppfmt pp.PP, key string, field *backend.TTL) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%d", key, *field)
		return true
	}

	res, err := strconv.Atoi(val)
	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a number: %v", key, val, err)
		return false

	case res < 0 || res > math.MaxInt32:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%d) should be 0 (provider default) or between 1 and %d",
			key, res, math.MaxInt32)
		return false

	default:
		*field = backend.TTL(res)
		return true
	}
}

// ReadNonnegDuration reads an environment variable and parses it as a time duration.
func ReadNonnegDuration(ppfmt pp.PP, key string, field *time.Duration) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%v", key, *field)
		return true
	}

	t, err := time.ParseDuration(val)

	switch {
	case err != nil:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a time duration: %v", key, val, err)
		return false
	case t < 0:
		ppfmt.Noticef(pp.EmojiUserError, "%s (%v) is negative", key, t)
		return false
	}

	*field = t
	return true
}

// ReadCron reads an environment variable and parses it as a Cron expression.
func ReadCron(ppfmt pp.PP, key string, field *cron.Schedule) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, cron.DescribeSchedule(*field))
		return true
	}

	c, err := cron.New(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a cron expression: %v", key, val, err)
		return false
	}
	*field = c
	return true
}
