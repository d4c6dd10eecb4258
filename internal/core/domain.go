package core

import (
	"errors"
	"time"
)

// Category is the closed set of labels the classification service assigns.
// Unknown labels coming over the wire are folded into CategoryEtc at the
// boundary; inside the engine the set is fixed.
const (
	CategoryFood      Category = "식비"
	CategoryTransport Category = "교통비"
	CategoryTelecom   Category = "통신비"
	CategoryLeisure   Category = "여가비"
	CategoryHousing   Category = "주거비"
	CategoryHousehold Category = "생활용품비"
	CategoryMedical   Category = "의료비"
	CategoryEducation Category = "교육비"
	CategoryContent   Category = "온라인 컨텐츠"
	CategoryBeauty    Category = "이미용/화장품"
	CategoryEvents    Category = "경조사비"
	CategoryFinance   Category = "금융비"
	CategoryTransfer  Category = "송금"
	CategoryEtc       Category = "기타"
)

type (
	Category string

	// Transaction is one classified financial event. Amounts are whole KRW.
	Transaction struct {
		Amount        int64     `json:"amount"`
		Category      Category  `json:"category"`
		Timestamp     time.Time `json:"transaction_date"`
		StoreName     string    `json:"store_name,omitempty"`
		Description   string    `json:"description,omitempty"`
		PaymentMethod string    `json:"payment_method,omitempty"`
	}

	// CategorySummary aggregates the transactions sharing one category.
	CategorySummary struct {
		Count       int     `json:"count"`
		TotalAmount int64   `json:"total_amount"`
		Percentage  float64 `json:"percentage"`
	}

	// SummarySet is the full per-category aggregation of one snapshot.
	SummarySet map[Category]CategorySummary

	// Profile is the percentage-normalized spending vector over the four
	// character-relevant categories. Fields are integers in [0,100]; they
	// sum to 100 except for the all-zero no-spend case, and independent
	// rounding may leave the sum off by one.
	Profile struct {
		Food      int `json:"식비"`
		Transport int `json:"교통비"`
		Telecom   int `json:"통신비"`
		Leisure   int `json:"여가비"`
	}

	// Card is one recommended credit card attached to an archetype.
	Card struct {
		Name     string `json:"name"`
		Issuer   string `json:"company"`
		Benefits string `json:"benefits"`
		Link     string `json:"link"`
	}

	// Archetype is one of the six fixed spending characters. The catalogue
	// is compiled in and never mutated at runtime.
	Archetype struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		TypeLabel   string   `json:"type"`
		Description string   `json:"description"`
		Pattern     Profile  `json:"pattern"`
		Traits      []string `json:"traits"`
		Tips        []string `json:"tips"`
		Color       string   `json:"color"`
		Emoji       string   `json:"emoji"`
		Cards       []Card   `json:"cards,omitempty"`
	}

	// MatchResult is the outcome of matching a profile against the
	// archetype catalogue.
	MatchResult struct {
		Archetype  Archetype `json:"character"`
		Profile    Profile   `json:"user_pattern"`
		Distance   float64   `json:"distance"`
		Similarity float64   `json:"similarity"`
	}

	// PeerGroup names one comparison dimension. GroupSelf marks the user's
	// own row, which is always first.
	PeerGroup string

	// PeerComparisonRow is one bar of the comparison chart. Value is in
	// units of ten thousand KRW.
	PeerComparisonRow struct {
		Group PeerGroup `json:"group"`
		Label string    `json:"label"`
		Value int64     `json:"value"`
	}

	// ComparisonNarration describes one non-self row relative to the self
	// row. When the peer group has no data, HasData is false and
	// DiffPercent is meaningless.
	ComparisonNarration struct {
		Group       PeerGroup `json:"group"`
		Label       string    `json:"label"`
		HasData     bool      `json:"has_data"`
		DiffPercent float64   `json:"diff_percent"`
		Higher      bool      `json:"higher"`
	}

	// DemographicSelections are the five peer-group choices made at upload
	// time. Each value is drawn from the closed option lists in catalog.
	DemographicSelections struct {
		Gender     string `json:"gender"`
		Age        string `json:"age"`
		Region     string `json:"region"`
		Occupation string `json:"occupation"`
		Income     string `json:"income"`
	}
)

const (
	GroupSelf       PeerGroup = "self"
	GroupGender     PeerGroup = "gender"
	GroupAge        PeerGroup = "age"
	GroupRegion     PeerGroup = "region"
	GroupOccupation PeerGroup = "occupation"
	GroupIncome     PeerGroup = "income"
)

var (
	ErrNegativeAmount  = errors.New("negative amount")
	ErrUnknownCategory = errors.New("unknown category")
)

var allCategories = []Category{
	CategoryFood, CategoryTransport, CategoryTelecom, CategoryLeisure,
	CategoryHousing, CategoryHousehold, CategoryMedical, CategoryEducation,
	CategoryContent, CategoryBeauty, CategoryEvents, CategoryFinance,
	CategoryTransfer, CategoryEtc,
}

// Categories returns the closed category set in its fixed order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps an arbitrary label onto the closed set. Unknown or
// empty labels become CategoryEtc, mirroring the defaulting the front-end
// applied to unmapped backend categories.
func ParseCategory(label string) Category {
	c := Category(label)
	if c.IsValid() {
		return c
	}
	return CategoryEtc
}

// ProfileCategories returns the four categories the character profile is
// built from, in profile-dimension order.
func ProfileCategories() [4]Category {
	return [4]Category{CategoryFood, CategoryTransport, CategoryTelecom, CategoryLeisure}
}

// Dimensions returns the profile as a fixed-order vector matching
// ProfileCategories.
func (p Profile) Dimensions() [4]int {
	return [4]int{p.Food, p.Transport, p.Telecom, p.Leisure}
}

// IsZero reports whether every profile dimension is zero.
func (p Profile) IsZero() bool {
	return p == Profile{}
}

// Validate checks a transaction against the store's boundary rules. The
// aggregation itself does not validate amounts; that contract belongs to
// the classification collaborator.
func (t Transaction) Validate() error {
	if t.Amount < 0 {
		return ErrNegativeAmount
	}
	if !t.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}
