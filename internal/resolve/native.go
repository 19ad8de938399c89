package resolve

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// NativeCreatedAt decodes EXIF directly from the file and returns the
// embedded creation timestamp, if any. It exists as a fallback for files
// whose exiftool output carries none of the preferred fields.
//
// EXIF datetimes have no zone; they are interpreted in loc (time.Local
// when nil). Decode failures are reported as "not found" because the
// caller treats the fallback as best-effort.
func NativeCreatedAt(path string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	for _, tag := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime} {
		if ts, ok := nativeTimeFromTag(x, tag, loc); ok {
			return ts, true
		}
	}
	if ts, err := x.DateTime(); err == nil {
		return ts, true
	}

	return time.Time{}, false
}

func nativeTimeFromTag(x *exif.Exif, tag exif.FieldName, loc *time.Location) (time.Time, bool) {
	field, err := x.Get(tag)
	if err != nil {
		return time.Time{}, false
	}
	s, err := field.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
