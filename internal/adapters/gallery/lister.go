// Package gallery lists the photo gallery images stored on disk.
package gallery

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path"
	"regexp"
)

// DefaultURLPrefix is the public path the gallery directory is served under.
const DefaultURLPrefix = "/img/galeria/"

var imageExt = regexp.MustCompile(`(?i)\.(jpe?g|png|webp)$`)

// DirLister lists image files in a directory as public URLs, in random order.
type DirLister struct {
	dir       string
	urlPrefix string
	shuffle   func(n int, swap func(i, j int))
}

// NewDirLister returns a lister for dir whose URLs start with urlPrefix.
func NewDirLister(dir, urlPrefix string) *DirLister {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &DirLister{dir: dir, urlPrefix: urlPrefix, shuffle: rand.Shuffle}
}

// List returns the URLs of every image in the directory, shuffled on each call.
func (l *DirLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}
	urls := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !imageExt.MatchString(e.Name()) {
			continue
		}
		urls = append(urls, path.Join(l.urlPrefix, e.Name()))
	}
	l.shuffle(len(urls), func(i, j int) { urls[i], urls[j] = urls[j], urls[i] })
	return urls, nil
}
