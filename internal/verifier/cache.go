package verifier

import "sync"

// certCache holds up to size validated chains keyed by normalized URL. The
// oldest entry is evicted first.
type certCache struct {
	mu      sync.Mutex
	size    int
	entries map[string]*signingCert
	order   []string
}

func newCertCache(size int) *certCache {
	return &certCache{
		size:    size,
		entries: make(map[string]*signingCert, size),
	}
}

func (c *certCache) get(url string) (*signingCert, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cert, ok := c.entries[url]
	return cert, ok
}

func (c *certCache) put(url string, cert *signingCert) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[url]; ok {
		c.entries[url] = cert
		return
	}
	for len(c.order) >= c.size && len(c.order) > 0 {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	c.entries[url] = cert
	c.order = append(c.order, url)
}

func (c *certCache) remove(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[url]; !ok {
		return
	}
	delete(c.entries, url)
	for i, u := range c.order {
		if u == url {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *certCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
