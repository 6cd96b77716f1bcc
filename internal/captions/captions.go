package captions

import (
	"encoding/json"
	"fmt"
	"strings"

	"yts/internal/language"
)

// Markers bound the embedded caption payload inside the watch page. The
// pair is a contract with an uncontrolled document format: YouTube can
// move the payload at any time, so both strings arrive from config
// instead of living here as constants.
type Markers struct {
	From string
	To   string
}

// Track is the located caption descriptor for one confirmed language.
type Track struct {
	FetchURL string
	Language language.Code
}

// TrackDetail describes one entry of the embedded track list as found,
// raw language code included. Kind is "asr" on auto-generated tracks.
type TrackDetail struct {
	FetchURL string
	Language string
	Name     string
	Kind     string
}

type trackRecord struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Name         struct {
		SimpleText string `json:"simpleText"`
	} `json:"name"`
	Kind string `json:"kind"`
}

type trackPayload struct {
	CaptionTracks []trackRecord `json:"captionTracks"`
}

// Locate isolates the caption track list embedded in a watch page and
// returns the first track whose language code equals lang. Anchor scans
// and the language scan are linear; document order decides ties.
func Locate(document string, markers Markers, lang language.Code) (Track, error) {
	records, err := extract(document, markers)
	if err != nil {
		return Track{}, err
	}
	want := lang.String()
	for _, rec := range records {
		if rec.LanguageCode == want {
			return Track{FetchURL: rec.BaseURL, Language: lang}, nil
		}
	}
	return Track{}, &LanguageError{Requested: lang}
}

// List returns every track of the embedded list in document order.
func List(document string, markers Markers) ([]TrackDetail, error) {
	records, err := extract(document, markers)
	if err != nil {
		return nil, err
	}
	details := make([]TrackDetail, 0, len(records))
	for _, rec := range records {
		details = append(details, TrackDetail{
			FetchURL: rec.BaseURL,
			Language: rec.LanguageCode,
			Name:     rec.Name.SimpleText,
			Kind:     rec.Kind,
		})
	}
	return details, nil
}

// extract cuts the document at the anchor pair and decodes the bounded
// substring. The substring must itself be a complete JSON object; the
// surrounding page never is.
func extract(document string, markers Markers) ([]trackRecord, error) {
	_, remainder, found := strings.Cut(document, markers.From)
	if !found {
		return nil, &AnchorError{Marker: MarkerFrom, Anchor: markers.From}
	}
	bounded, _, found := strings.Cut(remainder, markers.To)
	if !found {
		return nil, &AnchorError{Marker: MarkerTo, Anchor: markers.To}
	}

	var payload trackPayload
	if err := json.Unmarshal([]byte(bounded), &payload); err != nil {
		return nil, &PayloadError{Reason: "decode track list", Err: err}
	}
	if payload.CaptionTracks == nil {
		return nil, &PayloadError{Reason: "captionTracks list missing"}
	}
	for i, rec := range payload.CaptionTracks {
		if rec.BaseURL == "" {
			return nil, &PayloadError{Reason: fmt.Sprintf("track %d has no baseUrl", i)}
		}
		if rec.LanguageCode == "" {
			return nil, &PayloadError{Reason: fmt.Sprintf("track %d has no languageCode", i)}
		}
	}
	return payload.CaptionTracks, nil
}
