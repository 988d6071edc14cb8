// Package catalog holds the tool and plan catalogs. Tools are compiled in,
// plans come from configuration.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"officetools/internal/shared/biztime"
	"officetools/internal/shared/config"
)

//go:embed tools.yaml
var toolsYAML []byte

type Tool struct {
	Slug         string `yaml:"slug" json:"slug"`
	Name         string `yaml:"name" json:"name"`
	Category     string `yaml:"category" json:"category"`
	ClientOnly   bool   `yaml:"client_only" json:"client_only"`
	RequiredPlan string `yaml:"required_plan" json:"required_plan,omitempty"`
}

// IsFree reports whether the tool is usable without a subscription.
func (t Tool) IsFree() bool {
	return t.RequiredPlan == ""
}

type ToolCatalog struct {
	tools  []Tool
	bySlug map[string]Tool
}

// LoadToolCatalog parses the embedded tool list.
func LoadToolCatalog() (*ToolCatalog, error) {
	return ParseToolCatalog(toolsYAML)
}

func ParseToolCatalog(data []byte) (*ToolCatalog, error) {
	var doc struct {
		Tools []Tool `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tool catalog: %w", err)
	}

	c := &ToolCatalog{bySlug: make(map[string]Tool, len(doc.Tools))}
	for _, t := range doc.Tools {
		if t.Slug == "" {
			return nil, fmt.Errorf("tool catalog: entry %q has no slug", t.Name)
		}
		if _, dup := c.bySlug[t.Slug]; dup {
			return nil, fmt.Errorf("tool catalog: duplicate slug %q", t.Slug)
		}
		c.bySlug[t.Slug] = t
		c.tools = append(c.tools, t)
	}
	return c, nil
}

func (c *ToolCatalog) Get(slug string) (Tool, bool) {
	t, ok := c.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	return t, ok
}

func (c *ToolCatalog) All() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

type Plan struct {
	Name     string
	Price    decimal.Decimal
	Currency string
	Duration time.Duration
	Rank     int
}

// Satisfies reports whether holding p grants access to a tool requiring required.
func (p Plan) Satisfies(required Plan) bool {
	return p.Rank >= required.Rank
}

type PlanCatalog struct {
	plans  []Plan
	byName map[string]Plan
}

// NewPlanCatalog converts configured plans. Prices must be positive decimals.
func NewPlanCatalog(cfgs []config.PlanConfig, defaultCurrency string) (*PlanCatalog, error) {
	c := &PlanCatalog{byName: make(map[string]Plan, len(cfgs))}
	for _, pc := range cfgs {
		price, err := decimal.NewFromString(pc.Price)
		if err != nil {
			return nil, fmt.Errorf("plan %q: invalid price %q: %w", pc.Name, pc.Price, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("plan %q: price must be positive", pc.Name)
		}
		currency := strings.ToUpper(pc.Currency)
		if currency == "" {
			currency = strings.ToUpper(defaultCurrency)
		}
		p := Plan{
			Name:     strings.ToLower(pc.Name),
			Price:    price.Round(2),
			Currency: currency,
			Duration: biztime.DaysToDuration(pc.DurationDays),
			Rank:     pc.Rank,
		}
		c.byName[p.Name] = p
		c.plans = append(c.plans, p)
	}
	sort.SliceStable(c.plans, func(i, j int) bool { return c.plans[i].Rank < c.plans[j].Rank })
	return c, nil
}

func (c *PlanCatalog) Get(name string) (Plan, bool) {
	p, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// All returns plans ordered by rank.
func (c *PlanCatalog) All() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}
