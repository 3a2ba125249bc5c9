package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-cleanhttp"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the default MediaWiki index endpoint.
	DefaultBaseURL = "https://en.wikipedia.org/w/index.php"

	// MaxRevisionLimit is the hard maximum of revisions the export
	// endpoint returns in a single request.
	MaxRevisionLimit = 1000
)

// ErrUnexpectedStatus is returned when the export endpoint answers with a
// non-success HTTP status.
var ErrUnexpectedStatus = errors.New("export request failed")

// Fetcher is the interface to implement for a revision export source.
type Fetcher interface {
	// FetchExport downloads the export document holding up to limit
	// revisions of the given page, newest first.
	FetchExport(page string, limit int) (string, error)
}

// Options represents options for the Fetcher.
type Options struct {
	// BaseURL is the index endpoint of the wiki. DefaultBaseURL when empty.
	BaseURL string

	// Client is the HTTP client used for requests. A clean default
	// client is used when nil.
	Client *http.Client
}

// MediaWikiFetcher downloads page histories through the Special:Export
// form of a MediaWiki instance.
type MediaWikiFetcher struct {
	baseURL string
	client  *http.Client
}

// NewMediaWikiFetcher creates a new MediaWikiFetcher.
func NewMediaWikiFetcher(options Options) *MediaWikiFetcher {
	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := options.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}

	return &MediaWikiFetcher{
		baseURL: baseURL,
		client:  client,
	}
}

// FetchExport posts the Special:Export form and returns the raw export
// document. The limit is capped at MaxRevisionLimit.
func (f *MediaWikiFetcher) FetchExport(page string, limit int) (string, error) {
	if limit > MaxRevisionLimit {
		log.Warnf("Requested %v revisions, the export endpoint serves at most %v per request", limit, MaxRevisionLimit)

		limit = MaxRevisionLimit
	}

	form := url.Values{
		"title":  {"Special:Export"},
		"pages":  {page},
		"limit":  {strconv.Itoa(limit)},
		"dir":    {"desc"},
		"action": {"submit"},
	}

	log.Infof("Requesting %v revisions of %v from %v\n", limit, page, f.baseURL)

	response, err := f.client.PostForm(f.baseURL, form)
	if err != nil {
		return "", fmt.Errorf("requesting export of %q: %w", page, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("reading export of %q: %w", page, err)
	}

	return string(body), nil
}
