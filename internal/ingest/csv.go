package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"tourpipe/internal/textutil"
)

// Row is one normalized spreadsheet row. OwnerName may be empty when the
// sheet relied on a merged cell; the merge stage fills it down.
type Row struct {
	OwnerName    string
	ShowcaseLink string
	Category     string
	Device       string
	ShortBio     string
	About        string
	Location     string
	Website      string
	Email        string
	CountryTag   string
	CityTag      string
	Carousel     bool
	Socials      Socials
}

// column identifies a logical field a header cell can map to.
type column int

const (
	colUnknown column = iota
	colOwner
	colShowcase
	colCategory
	colDevice
	colShortBio
	colAbout
	colLocation
	colWebsite
	colSocial
	colEmail
	colCountryTag
	colCityTag
	colCarousel
)

// headerAlias pairs a normalized header label with its logical column. The
// sheet mixes Chinese operational labels with English profile labels. Labels
// are written post-Clean, so fullwidth punctuation appears in ASCII form.
type headerAlias struct {
	label string
	col   column
}

var headerAliases = []headerAlias{
	{"所属用户", colOwner},
	{"owner", colOwner},
	{"name", colOwner},
	{"showcase link", colShowcase},
	{"showcaselink", colShowcase},
	{"link", colShowcase},
	{"空间类型标签", colCategory},
	{"category", colCategory},
	{"拍摄设备", colDevice},
	{"device", colDevice},
	{"short bio", colShortBio},
	{"shortbio", colShortBio},
	{"about the creator", colAbout},
	{"aboutthecreator", colAbout},
	{"location", colLocation},
	{"website", colWebsite},
	{"social media", colSocial},
	{"socialmedia", colSocial},
	{"邮箱(主页不显示)", colEmail},
	{"邮箱", colEmail},
	{"email", colEmail},
	{"countrytag", colCountryTag},
	{"country tag", colCountryTag},
	{"citytag", colCityTag},
	{"city tag", colCityTag},
	{"是否carousel", colCarousel},
	{"carousel", colCarousel},
}

func init() {
	// Longest label first, so "showcase link" is tried before "link".
	sort.SliceStable(headerAliases, func(i, j int) bool {
		return len(headerAliases[i].label) > len(headerAliases[j].label)
	})
}

// ReadFile parses the CSV export at path. A missing or unreadable file, or a
// header row with no recognizable columns, is a fatal setup error. Individual
// cells are normalized here; structurally useless rows (no owner, no link)
// are still returned so the merger can apply fill-down before skipping them.
func ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source csv: %w", err)
	}
	defer file.Close()
	return Read(file)
}

// Read parses CSV content from r. See ReadFile.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]column, len(header))
	recognized := 0
	for i, label := range header {
		columns[i] = matchHeader(label)
		if columns[i] != colUnknown {
			recognized++
		}
	}
	if recognized == 0 {
		return nil, fmt.Errorf("csv header has no recognizable columns: %v", header)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, mapRecord(columns, record))
	}
	return rows, nil
}

func matchHeader(label string) column {
	normalized := strings.ToLower(textutil.Clean(label))
	for _, alias := range headerAliases {
		if normalized == alias.label {
			return alias.col
		}
	}
	// Tolerate decorations like "Website (public)". The prefix must end at a
	// word boundary so "link" never claims a "linkedin" header.
	for _, alias := range headerAliases {
		if rest, ok := strings.CutPrefix(normalized, alias.label); ok && !startsWithWordRune(rest) {
			return alias.col
		}
	}
	return colUnknown
}

func startsWithWordRune(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func mapRecord(columns []column, record []string) Row {
	var row Row
	for i, cell := range record {
		if i >= len(columns) {
			break
		}
		switch columns[i] {
		case colOwner:
			row.OwnerName = textutil.Clean(cell)
		case colShowcase:
			row.ShowcaseLink = textutil.SanitizeURL(cell)
		case colCategory:
			row.Category = textutil.Clean(cell)
		case colDevice:
			row.Device = textutil.Clean(cell)
		case colShortBio:
			row.ShortBio = textutil.CleanMultiline(cell)
		case colAbout:
			row.About = textutil.CleanMultiline(cell)
		case colLocation:
			row.Location = textutil.Clean(cell)
		case colWebsite:
			row.Website = textutil.SanitizeURL(cell)
		case colSocial:
			row.Socials = ParseSocials(cell)
		case colEmail:
			row.Email = textutil.NormalizeEmail(cell)
		case colCountryTag:
			row.CountryTag = textutil.Clean(cell)
		case colCityTag:
			row.CityTag = textutil.Clean(cell)
		case colCarousel:
			row.Carousel = textutil.ParseFlag(cell)
		}
	}
	return row
}
