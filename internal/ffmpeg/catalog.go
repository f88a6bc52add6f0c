package ffmpeg

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// Format describes one container entry reported by the ffmpeg formats table.
type Format struct {
	Decoder     bool
	Encoder     bool
	Extension   string
	Description string
}

// CommonExtensions is the curated allow-list of widely used audio/video
// extensions highlighted in diagnostic output.
var CommonExtensions = []string{
	"wav", "mp3", "m4a", "ogg", "flac", "wma", "aac", "mp4", "webm", "mkv", "avi",
}

// formatLine matches one entry of the `ffmpeg -formats` table: an optional
// decoder flag `D`, an optional dot separator, an optional encoder flag `E`,
// the extension token (comma-separated aliases allowed), and the description.
// Header and banner lines do not match and are dropped.
var formatLine = regexp.MustCompile(`^\s*(D)?\.?(E)?\s+(\S+)\s+(.*?)\s*$`)

// ParseFormats converts the raw formats-table output into Format records.
// A line listing several comma-separated extensions yields one record per
// extension, all sharing the same flags and description.
func ParseFormats(output string) []Format {
	var formats []Format
	for _, line := range strings.Split(output, "\n") {
		match := formatLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		decoder := match[1] == "D"
		encoder := match[2] == "E"
		description := match[4]
		for _, ext := range strings.Split(match[3], ",") {
			formats = append(formats, Format{
				Decoder:     decoder,
				Encoder:     encoder,
				Extension:   ext,
				Description: description,
			})
		}
	}
	return formats
}

// FilterCommon returns the subset of formats whose extension appears in the
// allow-list, preserving input order. A nil allow-list means CommonExtensions.
func FilterCommon(formats []Format, allow []string) []Format {
	if allow == nil {
		allow = CommonExtensions
	}
	allowed := make(map[string]struct{}, len(allow))
	for _, ext := range allow {
		allowed[ext] = struct{}{}
	}
	var filtered []Format
	for _, format := range formats {
		if _, ok := allowed[format.Extension]; ok {
			filtered = append(filtered, format)
		}
	}
	return filtered
}

// Catalog indexes the formats the transcoder reports, sorted by extension.
type Catalog struct {
	formats []Format
	byExt   map[string]Format
}

// NewCatalog builds a catalog from parsed formats. The input order is kept
// for equal extensions; the by-extension index resolves duplicates to the
// last entry in catalog order.
func NewCatalog(formats []Format) *Catalog {
	sorted := make([]Format, len(formats))
	copy(sorted, formats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Extension < sorted[j].Extension
	})

	byExt := make(map[string]Format, len(sorted))
	for _, format := range sorted {
		byExt[format.Extension] = format
	}
	return &Catalog{formats: sorted, byExt: byExt}
}

// LoadCatalog queries the transcoder for its formats table and parses it.
func LoadCatalog(ctx context.Context, lister FormatLister) (*Catalog, error) {
	output, err := lister.Formats(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(ParseFormats(output)), nil
}

// All returns every catalog entry in extension order.
func (c *Catalog) All() []Format {
	return c.formats
}

// Decoders returns the entries ffmpeg can read.
func (c *Catalog) Decoders() []Format {
	return c.filter(func(f Format) bool { return f.Decoder })
}

// Encoders returns the entries ffmpeg can write.
func (c *Catalog) Encoders() []Format {
	return c.filter(func(f Format) bool { return f.Encoder })
}

// Lookup resolves an extension to its catalog entry.
func (c *Catalog) Lookup(ext string) (Format, bool) {
	format, ok := c.byExt[ext]
	return format, ok
}

// Unsupported returns the requested extensions missing from the catalog,
// preserving request order.
func (c *Catalog) Unsupported(exts []string) []string {
	var missing []string
	for _, ext := range exts {
		if _, ok := c.byExt[ext]; !ok {
			missing = append(missing, ext)
		}
	}
	return missing
}

func (c *Catalog) filter(keep func(Format) bool) []Format {
	var matched []Format
	for _, format := range c.formats {
		if keep(format) {
			matched = append(matched, format)
		}
	}
	return matched
}
