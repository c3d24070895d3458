package pmcompare

import (
	"fmt"
	"strings"
)

// Topic is a named comparison topic with its keywords in declaration order.
// Keywords are lower-case so they can be matched against lower-cased text.
type Topic struct {
	Name     string   `json:"name" toml:"name"`
	Keywords []string `json:"keywords" toml:"keywords"`
}

// Taxonomy is the static, ordered set of topics used to compare documents.
// Declaration order determines result order and keyword tie-breaks.
type Taxonomy struct {
	Topics []Topic `json:"topics" toml:"topic"`
}

// Validate returns an error if the taxonomy is misconfigured.
func (t Taxonomy) Validate() error {
	if len(t.Topics) == 0 {
		return Errorf(EINVALID, "taxonomy has no topics")
	}

	seen := make(map[string]bool, len(t.Topics))
	for i, topic := range t.Topics {
		if strings.TrimSpace(topic.Name) == "" {
			return Errorf(EINVALID, "taxonomy topic %d has no name", i)
		}
		if seen[topic.Name] {
			return Errorf(EINVALID, "duplicate taxonomy topic %q", topic.Name)
		}
		seen[topic.Name] = true

		if len(topic.Keywords) == 0 {
			return Errorf(EINVALID, "taxonomy topic %q has no keywords", topic.Name)
		}
		for _, kw := range topic.Keywords {
			if kw == "" {
				return Errorf(EINVALID, "taxonomy topic %q has an empty keyword", topic.Name)
			}
			if kw != strings.ToLower(kw) {
				return Errorf(EINVALID, "taxonomy topic %q keyword %q must be lower-case", topic.Name, kw)
			}
		}
	}
	return nil
}

// MustTaxonomy panics if t is invalid. The taxonomy is static configuration,
// so a bad one is a programming error to surface at startup.
func MustTaxonomy(t Taxonomy) Taxonomy {
	if err := t.Validate(); err != nil {
		panic(fmt.Sprintf("pmcompare: %s", ErrorMessage(err)))
	}
	return t
}

// Topic returns the topic with the given name.
func (t Taxonomy) Topic(name string) (Topic, bool) {
	for _, topic := range t.Topics {
		if topic.Name == name {
			return topic, true
		}
	}
	return Topic{}, false
}

// FirstKeyword returns the first declared keyword of the named topic,
// or "" when the topic is unknown.
func (t Taxonomy) FirstKeyword(name string) string {
	topic, ok := t.Topic(name)
	if !ok || len(topic.Keywords) == 0 {
		return ""
	}
	return topic.Keywords[0]
}
