package images

import (
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour        = 60 * 60
	urlCacheExpire = oneHour * 24
)

// Resolver maps the opaque image public id stored on an exercise to a
// display URL on the image hosting service. The mapping is a pure function
// of the public id, so resolved URLs are memoized.
type Resolver struct {
	baseURL   string
	cloudName string
	cache     *freecache.Cache
}

func NewResolver(cloudName string) *Resolver {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Resolver{
		baseURL:   "https://res.cloudinary.com",
		cloudName: cloudName,
		cache:     freecache.NewCache(cacheSize),
	}
}

// URL resolves a public image id to its display URL.
// Returns "" for an empty public id (exercise without an image).
func (r *Resolver) URL(publicID string) string {
	if publicID == "" {
		return ""
	}

	cacheKey := []byte(publicID)
	if cached, err := r.cache.Get(cacheKey); err == nil {
		return string(cached)
	}

	url := fmt.Sprintf("%s/%s/image/upload/%s", r.baseURL, r.cloudName, publicID)
	if err := r.cache.Set(cacheKey, []byte(url), urlCacheExpire); err != nil {
		log.Tracef("failed to cache image url for %s: %s", publicID, err)
	}

	return url
}
