// gamedata/catalog.go - Static game data catalogs
package gamedata

import (
	"fmt"
	"math"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

type WeatherCondition string

const (
	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRainy  WeatherCondition = "rainy"
	WeatherSnowy  WeatherCondition = "snowy"
	WeatherStormy WeatherCondition = "stormy"
	WeatherFoggy  WeatherCondition = "foggy"
	WeatherWindy  WeatherCondition = "windy"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Reward is what unlocking an achievement or claiming a certification pays out.
type Reward struct {
	Cash  int      `json:"cash,omitempty"`
	Gems  int      `json:"gems,omitempty"`
	XP    int      `json:"xp,omitempty"`
	Items []string `json:"items,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Category    string `json:"category"` // kennel, training, competition, breeding, collection, care, progression, special
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      Rarity `json:"rarity"`
	Reward      Reward `json:"reward"`
	Hidden      bool   `json:"is_hidden,omitempty"`
	Repeatable  bool   `json:"is_repeatable,omitempty"`
	// Requires lists prerequisite achievement ids; all must be unlocked
	// before progress on this one is tracked.
	Requires    []string `json:"requires,omitempty"`
	TargetValue int      `json:"target_value,omitempty"` // treated as 1 when <= 0
}

// WinRequirement asks for Count wins of a competition Type, each scoring at
// least MinScore (0 means any score counts).
type WinRequirement struct {
	Type     string  `json:"type"`
	Count    int     `json:"count"`
	MinScore float64 `json:"min_score,omitempty"`
}

type CertificationRequirements struct {
	CompetitionWins        []WinRequirement `json:"competition_wins,omitempty"`
	MinStats               map[string]int   `json:"min_stats,omitempty"`
	MinLevel               int              `json:"min_level,omitempty"`
	MinBondLevel           int              `json:"min_bond_level,omitempty"`
	RequiredSpecialization string           `json:"required_specialization,omitempty"`
	RequiredCertifications []string         `json:"required_certifications,omitempty"`
	// CustomRequirement is descriptive only and verified by hand, never
	// machine-checked.
	CustomRequirement string `json:"custom_requirement,omitempty"`
}

type CertificationBenefits struct {
	StatBonus      int    `json:"stat_bonus,omitempty"`
	PrestigePoints int    `json:"prestige_points"`
	CashReward     int    `json:"cash_reward,omitempty"`
	GemReward      int    `json:"gem_reward,omitempty"`
	SpecialBonus   string `json:"special_bonus,omitempty"`
}

type Certification struct {
	ID            string                    `json:"id"`
	Name          string                    `json:"name"`
	TitlePrefix   string                    `json:"title_prefix"`
	Description   string                    `json:"description"`
	Icon          string                    `json:"icon"`
	PrestigeLevel int                       `json:"prestige_level"` // 1-10
	Requirements  CertificationRequirements `json:"requirements"`
	Benefits      CertificationBenefits     `json:"benefits"`
	DisplayColor  string                    `json:"display_color"`
}

type PrestigeRank struct {
	Rank              string   `json:"rank"`
	MinPrestigePoints int      `json:"min_prestige_points"`
	Icon              string   `json:"icon"`
	Benefits          []string `json:"benefits"`
}

type SizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CategoryWeights are the six conformation judging categories. The weights
// sum to 100 for every breed standard.
type CategoryWeights struct {
	Head        float64 `json:"head"`
	Body        float64 `json:"body"`
	Legs        float64 `json:"legs"`
	Coat        float64 `json:"coat"`
	Movement    float64 `json:"movement"`
	Temperament float64 `json:"temperament"`
}

func (w CategoryWeights) Sum() float64 {
	return w.Head + w.Body + w.Legs + w.Coat + w.Movement + w.Temperament
}

type BreedStandard struct {
	BreedID          string          `json:"breed_id"`
	Name             string          `json:"name"`
	IdealSize        SizeRange       `json:"ideal_size"`
	IdealProportions string          `json:"ideal_proportions"`
	Categories       CategoryWeights `json:"categories"`
	Characteristics  []string        `json:"characteristics"`
	// Fault lists are descriptive only; they are shown to the player and
	// never scored.
	MinorFaults       []string `json:"minor_faults,omitempty"`
	MajorFaults       []string `json:"major_faults,omitempty"`
	Disqualifications []string `json:"disqualifications,omitempty"`
	// MinigameModifiers multiply a breed's base performance per discipline.
	MinigameModifiers map[string]float64 `json:"minigame_modifiers,omitempty"`
}

type StaffTemplate struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Role                string  `json:"role"`
	Quality             string  `json:"quality"` // basic, experienced, expert, master
	UnlockLevel         int     `json:"unlock_level"`
	KennelLevelRequired int     `json:"kennel_level_required"`
	HiringCost          int     `json:"hiring_cost"`
	DailyWage           int     `json:"daily_wage"`
	Efficiency          float64 `json:"efficiency"`  // 0.8 - 1.5
	Reliability         int     `json:"reliability"` // percent
	MaxDogs             int     `json:"max_dogs"`
	Benefits            string  `json:"benefits"`
	SpecialAbility      string  `json:"special_ability"`
}

// WeatherChance is one entry of a season's weighted weather table. Slice
// order is the tie-break order when floating-point residue leaves no match.
type WeatherChance struct {
	Condition WeatherCondition `json:"condition"`
	Weight    float64          `json:"weight"`
}

type SeasonProfile struct {
	TemperatureMin   int             `json:"temperature_min"` // degrees F
	TemperatureMax   int             `json:"temperature_max"`
	TrainingBonus    float64         `json:"training_bonus"`    // additive
	CompetitionBonus float64         `json:"competition_bonus"` // additive
	Weather          []WeatherChance `json:"weather"`
}

type WeatherEffect struct {
	TrainingMultiplier    float64 `json:"training_multiplier"`
	CompetitionMultiplier float64 `json:"competition_multiplier"`
	TemperatureOffset     int     `json:"temperature_offset"`
	Outdoor               bool    `json:"outdoor"`
}

type SeasonalEvent struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Season      Season `json:"season"`
	Description string `json:"description"`
	StartMonth  int    `json:"start_month"`
	StartDay    int    `json:"start_day"`
	EndMonth    int    `json:"end_month"`
	EndDay      int    `json:"end_day"`
	Bonus       string `json:"bonus"`
}

// TournamentCircuit is one scheduled seasonal tournament for a discipline.
type TournamentCircuit struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Season     Season `json:"season"`
	Discipline string `json:"discipline"`
	Month      int    `json:"month"`
	EntryFee   int    `json:"entry_fee"`
	PrizeCash  int    `json:"prize_cash"`
	PrizeGems  int    `json:"prize_gems"`
	MinLevel   int    `json:"min_level"`
}

// Catalog bundles every static table. It is built once at startup, validated,
// and injected read-only into the engine and handlers.
type Catalog struct {
	Achievements   []Achievement
	Certifications []Certification
	// PrestigeRanks is ordered ascending by MinPrestigePoints; the first
	// entry must start at 0.
	PrestigeRanks  []PrestigeRank
	Breeds         []BreedStandard
	StaffTemplates []StaffTemplate
	Seasons        map[Season]SeasonProfile
	Weather        map[WeatherCondition]WeatherEffect
	SeasonalEvents []SeasonalEvent
	Tournaments    []TournamentCircuit
	StaffFirstNames []string
	StaffLastNames  []string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Achievements:    achievementTable,
		Certifications:  certificationTable,
		PrestigeRanks:   prestigeRankTable,
		Breeds:          breedStandardTable,
		StaffTemplates:  staffTemplateTable,
		Seasons:         seasonTable,
		Weather:         weatherEffectTable,
		SeasonalEvents:  seasonalEventTable,
		Tournaments:     tournamentTable,
		StaffFirstNames: staffFirstNames,
		StaffLastNames:  staffLastNames,
	}
}

// Achievement looks up a catalog entry by id.
func (c *Catalog) Achievement(id string) (*Achievement, bool) {
	for i := range c.Achievements {
		if c.Achievements[i].ID == id {
			return &c.Achievements[i], true
		}
	}
	return nil, false
}

// Certification looks up a catalog entry by id.
func (c *Catalog) Certification(id string) (*Certification, bool) {
	for i := range c.Certifications {
		if c.Certifications[i].ID == id {
			return &c.Certifications[i], true
		}
	}
	return nil, false
}

// Breed looks up a breed standard by id.
func (c *Catalog) Breed(id string) (*BreedStandard, bool) {
	for i := range c.Breeds {
		if c.Breeds[i].BreedID == id {
			return &c.Breeds[i], true
		}
	}
	return nil, false
}

// StaffTemplate looks up a staff template by id.
func (c *Catalog) StaffTemplate(id string) (*StaffTemplate, bool) {
	for i := range c.StaffTemplates {
		if c.StaffTemplates[i].ID == id {
			return &c.StaffTemplates[i], true
		}
	}
	return nil, false
}

const weightEpsilon = 1e-9

// Validate fails fast on catalog defects: dangling or cyclic achievement
// prerequisites, dangling certification prerequisites, weather probability
// tables that do not sum to 1, breed category weights that do not sum to
// 100, and prestige ranks that are unsorted or do not start at 0. Run at
// process start so bad data never reaches query time.
func (c *Catalog) Validate() error {
	byID := make(map[string]*Achievement, len(c.Achievements))
	for i := range c.Achievements {
		a := &c.Achievements[i]
		if a.ID == "" {
			return fmt.Errorf("achievement %d: empty id", i)
		}
		if _, dup := byID[a.ID]; dup {
			return fmt.Errorf("achievement %q: duplicate id", a.ID)
		}
		byID[a.ID] = a
	}
	for _, a := range c.Achievements {
		for _, req := range a.Requires {
			if _, ok := byID[req]; !ok {
				return fmt.Errorf("achievement %q: requires unknown achievement %q", a.ID, req)
			}
		}
	}
	if err := checkRequireCycles(byID); err != nil {
		return err
	}

	certIDs := make(map[string]bool, len(c.Certifications))
	for _, cert := range c.Certifications {
		if cert.ID == "" {
			return fmt.Errorf("certification with empty id")
		}
		if certIDs[cert.ID] {
			return fmt.Errorf("certification %q: duplicate id", cert.ID)
		}
		certIDs[cert.ID] = true
		if cert.PrestigeLevel < 1 || cert.PrestigeLevel > 10 {
			return fmt.Errorf("certification %q: prestige level %d out of range 1-10", cert.ID, cert.PrestigeLevel)
		}
	}
	for _, cert := range c.Certifications {
		for _, req := range cert.Requirements.RequiredCertifications {
			if !certIDs[req] {
				return fmt.Errorf("certification %q: requires unknown certification %q", cert.ID, req)
			}
		}
	}

	if len(c.PrestigeRanks) == 0 {
		return fmt.Errorf("no prestige ranks defined")
	}
	if c.PrestigeRanks[0].MinPrestigePoints != 0 {
		return fmt.Errorf("lowest prestige rank %q must start at 0 points", c.PrestigeRanks[0].Rank)
	}
	for i := 1; i < len(c.PrestigeRanks); i++ {
		if c.PrestigeRanks[i].MinPrestigePoints <= c.PrestigeRanks[i-1].MinPrestigePoints {
			return fmt.Errorf("prestige ranks not strictly ascending at %q", c.PrestigeRanks[i].Rank)
		}
	}

	for _, b := range c.Breeds {
		if sum := b.Categories.Sum(); math.Abs(sum-100) > weightEpsilon {
			return fmt.Errorf("breed %q: category weights sum to %.4f, want 100", b.BreedID, sum)
		}
		if b.IdealSize.Min >= b.IdealSize.Max {
			return fmt.Errorf("breed %q: invalid ideal size range [%d,%d]", b.BreedID, b.IdealSize.Min, b.IdealSize.Max)
		}
	}

	for season, profile := range c.Seasons {
		if len(profile.Weather) == 0 {
			return fmt.Errorf("season %q: empty weather table", season)
		}
		total := 0.0
		for _, wc := range profile.Weather {
			if wc.Weight < 0 {
				return fmt.Errorf("season %q: negative weight for %q", season, wc.Condition)
			}
			if _, ok := c.Weather[wc.Condition]; !ok {
				return fmt.Errorf("season %q: weather %q has no effect entry", season, wc.Condition)
			}
			total += wc.Weight
		}
		if math.Abs(total-1.0) > weightEpsilon {
			return fmt.Errorf("season %q: weather weights sum to %.6f, want 1.0", season, total)
		}
		if profile.TemperatureMin >= profile.TemperatureMax {
			return fmt.Errorf("season %q: invalid temperature range", season)
		}
	}

	for _, tpl := range c.StaffTemplates {
		if tpl.Efficiency < 0.8 || tpl.Efficiency > 1.5 {
			return fmt.Errorf("staff template %q: efficiency %.2f out of range 0.8-1.5", tpl.ID, tpl.Efficiency)
		}
		if tpl.MaxDogs < 1 {
			return fmt.Errorf("staff template %q: max dogs must be positive", tpl.ID)
		}
	}

	for _, t := range c.Tournaments {
		if _, ok := c.Seasons[t.Season]; !ok {
			return fmt.Errorf("tournament %q: unknown season %q", t.ID, t.Season)
		}
	}

	return nil
}

// checkRequireCycles walks the prerequisite graph with a three-color DFS.
func checkRequireCycles(byID map[string]*Achievement) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(byID))

	var visit func(id string) error
	visit = func(id string) error {
		switch color[id] {
		case gray:
			return fmt.Errorf("achievement %q: prerequisite cycle detected", id)
		case black:
			return nil
		}
		color[id] = gray
		for _, req := range byID[id].Requires {
			if err := visit(req); err != nil {
				return err
			}
		}
		color[id] = black
		return nil
	}

	for id := range byID {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}
