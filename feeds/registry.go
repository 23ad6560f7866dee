package feeds

import (
	"errors"
	"fmt"
	"os"

	"github.com/arthuhr-heslault/ai-newsletter/types"

	"gopkg.in/yaml.v3"
)

// DefaultRegion is applied when a source declares no region tag.
const DefaultRegion = "Global"

// Registry validation errors.
var (
	ErrNoSources         = errors.New("at least one source is required")
	ErrSourceMissingName = errors.New("source name is required")
)

// DefaultSources is the built-in registry of AI/ML feeds with region tags.
// Regions: "Global", "North America", "Europe", "Asia".
var DefaultSources = []types.Source{
	{Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml", Region: "North America"},
	{Name: "Google AI Blog", URL: "https://ai.googleblog.com/feeds/posts/default", Region: "North America"},
	{Name: "DeepMind", URL: "https://deepmind.google/discover/blog/feed.xml", Region: "Europe"},
	{Name: "Anthropic", URL: "https://www.anthropic.com/news.xml", Region: "North America"},
	{Name: "Hugging Face Blog", URL: "https://huggingface.co/blog/feed.xml", Region: "Europe"},
	{Name: "Stability AI", URL: "https://stability.ai/blog/rss.xml", Region: "Europe"},
	{Name: "NVIDIA Technical Blog - AI", URL: "https://developer.nvidia.com/blog/tag/ai/feed/", Region: "North America"},
	{Name: "Berkeley BAIR Blog", URL: "https://bair.berkeley.edu/blog/feed.xml", Region: "North America"},
	{Name: "Stanford HAI", URL: "https://hai.stanford.edu/news/feed", Region: "North America"},
	{Name: "MIT News - AI", URL: "https://news.mit.edu/topic/artificial-intelligence2-rss.xml", Region: "North America"},
	{Name: "Allen AI (AI2)", URL: "https://allenai.org/news/rss.xml", Region: "North America"},
	{Name: "Papers With Code - Daily", URL: "https://paperswithcode.com/news/daily/rss", Region: "Global"},
	{Name: "The Gradient", URL: "https://thegradient.pub/rss/", Region: "Global"},
	{Name: "TechCrunch AI", URL: "https://techcrunch.com/tag/artificial-intelligence/feed/", Region: "North America"},
	{Name: "The Verge AI", URL: "https://www.theverge.com/artificial-intelligence/rss/index.xml", Region: "North America"},
	{Name: "NYT - AI", URL: "https://rss.nytimes.com/services/xml/rss/nyt/ArtificialIntelligence.xml", Region: "North America"},
	{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/", Region: "North America"},
	{Name: "Preferred Networks Tech Blog", URL: "https://tech.preferred.jp/en/blog/rss.xml", Region: "Asia"},
	{Name: "LINE Engineering (EN)", URL: "https://engineering.linecorp.com/en/blog/rss/", Region: "Asia"},
	{Name: "Sony AI Blog", URL: "https://ai.sony/blog/index.xml", Region: "Asia"},
}

// Registry is the ordered, immutable list of feed sources for a run.
type Registry struct {
	sources  []types.Source
	regionOf map[string]string
}

// NewRegistry wraps an ordered source list. The order is significant:
// it drives the dedupe tie-break during aggregation.
func NewRegistry(sources []types.Source) (*Registry, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	regionOf := make(map[string]string, len(sources))
	for i, s := range sources {
		if s.Name == "" {
			return nil, fmt.Errorf("source %d: %w", i, ErrSourceMissingName)
		}
		region := s.Region
		if region == "" {
			region = DefaultRegion
		}
		regionOf[s.Name] = region
	}
	return &Registry{sources: sources, regionOf: regionOf}, nil
}

// LoadRegistry builds a registry from a YAML file, or from the built-in
// default list when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return NewRegistry(DefaultSources)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	var doc struct {
		Sources []types.Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	return NewRegistry(doc.Sources)
}

// Sources returns the registry in declaration order.
func (r *Registry) Sources() []types.Source {
	return r.sources
}

// RegionOf maps a source name to its region, defaulting unknown
// sources to "Global".
func (r *Registry) RegionOf(name string) string {
	if region, ok := r.regionOf[name]; ok {
		return region
	}
	return DefaultRegion
}

// Regions returns the distinct regions present in the registry.
func (r *Registry) Regions() []string {
	seen := make(map[string]bool)
	regions := make([]string, 0, 4)
	for _, s := range r.sources {
		region := r.RegionOf(s.Name)
		if !seen[region] {
			seen[region] = true
			regions = append(regions, region)
		}
	}
	return regions
}
