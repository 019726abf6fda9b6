// Package fontmetrics holds static per-font glyph-width tables, string
// measurement, and the greedy word-wrap simulator used by the Line Coverage
// Contract and the simulation loop.
//
// Character widths are in em units (relative to font size). This is an
// intentional approximation: exact typesetting (optimal line breaking with
// shrink/stretch) is not attempted. Static tables catch real violations
// (3-line bullets, 30%-fill bullets) while tolerating borderline ambiguity
// of about 1-2% of line width. The contract's fill thresholds (0.80, not
// 1.00, for a one-line bullet) absorb the residual error; PageConfig's
// MicrotypeMargin is not read by Wrap or by the contract.
//
// All tables cover ASCII 0x20..0x7E (95 printable characters). Index =
// codepoint - 32.
package fontmetrics

// FontFamily is one of the five supported resume font families.
type FontFamily string

// The five supported resume font families.
const (
	Inter          FontFamily = "inter"
	EbGaramond     FontFamily = "eb_garamond"
	Lato           FontFamily = "lato"
	Oswald         FontFamily = "oswald"
	ComputerModern FontFamily = "computer_modern"
)

// PageConfig is the immutable layout configuration for a single simulation
// run. TextWidthEm is the usable text width in em units, derived upstream
// from paper size, margins, and font size.
type PageConfig struct {
	Font       FontFamily
	FontSizePt int
	// TextWidthEm is the usable text width in em units at the configured
	// font size. Example: US letter, 1" margins, 11pt -> 6.5in *
	// (72.27pt/in / 11pt) ~= 42.7em.
	TextWidthEm   float32
	MarginLeftIn  float32
	MarginRightIn float32
	// UsableHeightLines is the total line slots available on a single-page
	// resume (includes section headers and inter-item spacing).
	UsableHeightLines int
	// MicrotypeMargin is the configured tolerance fraction for table
	// approximation error (nominal 0.03). Neither Wrap nor the contract
	// package applies it.
	MicrotypeMargin float32
}

// DefaultPageConfig returns the reference page configuration for the given
// family: US letter, 11pt, 1.0in margins all sides.
func DefaultPageConfig(font FontFamily) PageConfig {
	return PageConfig{
		Font:              font,
		FontSizePt:        11,
		TextWidthEm:       42.7,
		MarginLeftIn:      1.0,
		MarginRightIn:     1.0,
		UsableHeightLines: 45,
		MicrotypeMargin:   0.03,
	}
}

// Table is an immutable per-family character-width record. widths[i] is the
// width of ASCII character (i+32), covering 0x20 (space) through 0x7E (~).
//
// Slot layout:
//
//	[0]=sp  [1]=!   [2]="   [3]=#   [4]=$   [5]=%   [6]=&   [7]='
//	[8]=(   [9]=)   [10]=*  [11]=+  [12]=,  [13]=-  [14]=.  [15]=/
//	[16..25]=0-9
//	[26]=:  [27]=;  [28]=<  [29]==  [30]=>  [31]=?  [32]=@
//	[33..58]=A-Z
//	[59]=[  [60]=\  [61]=]  [62]=^  [63]=_  [64]=`
//	[65..90]=a-z
//	[91]={  [92]=|  [93]=}  [94]=~
type Table struct {
	Font   FontFamily
	widths [95]float32
	// AverageCharWidth is the fallback width for non-ASCII codepoints.
	AverageCharWidth float32
	SpaceWidth       float32
}

// MeasureString returns the em-unit width of s. Non-ASCII characters fall
// back to AverageCharWidth.
func (t *Table) MeasureString(s string) float32 {
	var total float32

	for _, r := range s {
		if r >= 0x20 && r <= 0x7E {
			total += t.widths[r-0x20]
		} else {
			total += t.AverageCharWidth
		}
	}

	return total
}

// CoverageFraction returns the fraction of cfg.TextWidthEm that s occupies
// on a single line. Values above 1.0 indicate the string would wrap. The
// microtype margin is intentionally not applied here; callers apply their
// own tolerance.
func (t *Table) CoverageFraction(s string, cfg PageConfig) float32 {
	return t.MeasureString(s) / cfg.TextWidthEm
}

// Wrap runs the greedy word-wrap simulation and returns the per-line fill
// fractions (line width / TextWidthEm). An empty or all-whitespace string
// returns an empty slice.
func (t *Table) Wrap(text string, cfg PageConfig) []float32 {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}

	maxWidth := cfg.TextWidthEm

	var (
		fills       []float32
		current     float32
		firstOnLine = true
	)

	for _, word := range words {
		wordWidth := t.MeasureString(word)

		spaceWidth := float32(0)
		if !firstOnLine {
			spaceWidth = t.SpaceWidth
		}

		if !firstOnLine && current+spaceWidth+wordWidth > maxWidth {
			fills = append(fills, current/maxWidth)
			current = wordWidth
			// firstOnLine stays false: the next word on this new line still
			// gets a leading space.
			continue
		}

		current += spaceWidth + wordWidth
		firstOnLine = false
	}

	fills = append(fills, current/maxWidth)

	return fills
}

// EstimatedLines returns the number of printed lines Wrap would produce.
// Exposed directly on the metric store as a convenience distinct from the
// contract package's authoritative simulation; both share this
// implementation.
func (t *Table) EstimatedLines(text string, cfg PageConfig) int {
	return len(t.Wrap(text, cfg))
}

func splitWords(text string) []string {
	var (
		words []string
		start = -1
	)

	for i, r := range text {
		isSpace := r == ' ' || r == '\t' || r == '\n' || r == '\r'
		if isSpace {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}

			continue
		}

		if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		words = append(words, text[start:])
	}

	return words
}

// Get returns the static metric table for a font family. Tables are
// process-wide static data with no lifecycle.
func Get(font FontFamily) *Table {
	switch font {
	case EbGaramond:
		return &ebGaramondTable
	case Lato:
		return &latoTable
	case Oswald:
		return &oswaldTable
	case ComputerModern:
		return &computerModernTable
	default:
		return &interTable
	}
}
