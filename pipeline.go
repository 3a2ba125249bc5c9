// Package wikirevisions downloads the revision history of a wiki page and
// stores one file per revision, organized by year and month.
package wikirevisions

import (
	"io"

	"github.com/VLeins/oii-fsds-wikipedia/fetcher"
	"github.com/VLeins/oii-fsds-wikipedia/revision"
	"github.com/VLeins/oii-fsds-wikipedia/store"
	log "github.com/sirupsen/logrus"
)

// ProgressFunc is called after each processed revision with the number of
// revisions processed so far and the expected total. The total is the
// requested limit, which may overstate the real revision count when the page
// has fewer revisions.
type ProgressFunc func(processed, total int)

// Pipeline represents the whole download pipeline: fetch the export
// document, validate it, split it into revisions and persist each one.
type Pipeline struct {
	Fetcher  fetcher.Fetcher
	Store    *store.Store
	Progress ProgressFunc
}

func (p *Pipeline) reportProgress(processed, total int) {
	if p.Progress != nil {
		p.Progress(processed, total)
	}
}

// Run downloads up to limit revisions of page, writes each revision that is
// not already stored, and returns a recursive count of the page's stored
// revisions (directories included when countFolders is set).
//
// Processing is strictly sequential and stops at the first error: a failed
// fetch, a missing page, or a revision missing its id or timestamp all abort
// the run.
func (p *Pipeline) Run(page string, limit int, countFolders bool) (int, error) {
	log.Infof("Downloading %v revisions of %v to %v\n", limit, page, p.Store.Root())

	document, err := p.Fetcher.FetchExport(page, limit)
	if err != nil {
		return 0, err
	}

	if err := revision.ValidatePage(page, document); err != nil {
		return 0, err
	}

	log.Infoln("Downloaded revisions. Parsing and saving...")

	iterator := revision.NewIterator(document)

	processed := 0
	saved := 0

	for {
		fragment, err := iterator.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return 0, err
		}

		path, written, err := p.Store.SaveRevision(page, fragment)
		if err != nil {
			return 0, err
		}

		if written {
			saved++

			log.Debugf("Saved revision to %v\n", path)
		}

		processed++
		p.reportProgress(processed, limit)
	}

	log.Infof("Processed %v revisions, %v newly saved\n", processed, saved)

	count, err := store.Count(p.Store.PagePath(page), countFolders)
	if err != nil {
		return 0, err
	}

	log.Infof("Done! %v revisions downloaded\n", count)

	return count, nil
}
