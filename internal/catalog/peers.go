package catalog

import "sobi/internal/core"

// Option is one selectable demographic value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	genderOptions = []Option{
		{Value: "male", Label: "남성"},
		{Value: "female", Label: "여성"},
	}
	ageOptions = []Option{
		{Value: "19-24", Label: "19~24세"},
		{Value: "25-29", Label: "25~29세"},
		{Value: "30-34", Label: "30~34세"},
		{Value: "35-39", Label: "35~39세"},
		{Value: "40-44", Label: "40~44세"},
		{Value: "45-49", Label: "45~49세"},
		{Value: "50-54", Label: "50~54세"},
	}
	regionOptions = []Option{
		{Value: "서울", Label: "서울"},
		{Value: "인천·경기·강원", Label: "인천·경기·강원"},
		{Value: "대전·세종·충청", Label: "대전·세종·충청"},
		{Value: "대구·경북", Label: "대구·경북"},
		{Value: "부산·울산·경남", Label: "부산·울산·경남"},
		{Value: "광주·전라·제주", Label: "광주·전라·제주"},
	}
	occupationOptions = []Option{
		{Value: "대학생·대학원생", Label: "대학생·대학원생(휴학생 포함)"},
		{Value: "직장인", Label: "직장인"},
		{Value: "자영업자·개인사업자·법인사업자", Label: "자영업자·개인사업자·법인사업자"},
		{Value: "프리랜서·파트타임·아르바이트", Label: "프리랜서·파트타임·아르바이트"},
		{Value: "전업주부", Label: "전업주부"},
		{Value: "취업준비생·무직·기타", Label: "취업준비생·무직·기타"},
	}
	incomeOptions = []Option{
		{Value: "100만원 미만", Label: "100만원 미만"},
		{Value: "100만원~300만원", Label: "100만원~300만원"},
		{Value: "300만원 이상", Label: "300만원 이상"},
	}
)

func GenderOptions() []Option     { return append([]Option(nil), genderOptions...) }
func AgeOptions() []Option        { return append([]Option(nil), ageOptions...) }
func RegionOptions() []Option     { return append([]Option(nil), regionOptions...) }
func OccupationOptions() []Option { return append([]Option(nil), occupationOptions...) }
func IncomeOptions() []Option     { return append([]Option(nil), incomeOptions...) }

// DefaultSelections are the values assumed when a user skipped the
// characteristics step at upload time.
func DefaultSelections() core.DemographicSelections {
	return core.DemographicSelections{
		Gender:     "male",
		Age:        "25-29",
		Region:     "서울",
		Occupation: "대학생·대학원생",
		Income:     "100만원 미만",
	}
}

func optionValid(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func optionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// ValidateSelections reports whether every selection value belongs to its
// option list.
func ValidateSelections(sel core.DemographicSelections) bool {
	return optionValid(genderOptions, sel.Gender) &&
		optionValid(ageOptions, sel.Age) &&
		optionValid(regionOptions, sel.Region) &&
		optionValid(occupationOptions, sel.Occupation) &&
		optionValid(incomeOptions, sel.Income)
}

// SelectionLabel resolves the display label for a demographic value.
func SelectionLabel(group core.PeerGroup, value string) string {
	switch group {
	case core.GroupGender:
		return optionLabel(genderOptions, value)
	case core.GroupAge:
		return optionLabel(ageOptions, value)
	case core.GroupRegion:
		return optionLabel(regionOptions, value)
	case core.GroupOccupation:
		return optionLabel(occupationOptions, value)
	case core.GroupIncome:
		return optionLabel(incomeOptions, value)
	}
	return value
}

// peerTable maps a demographic value to its per-category monthly average
// spend in units of ten thousand KRW. Tables are sparse: a missing entry
// means no survey data for that combination and reads as zero.
type peerTable map[string]map[core.Category]int64

// PeerTables bundles the five static lookup tables.
type PeerTables struct {
	gender     peerTable
	age        peerTable
	region     peerTable
	occupation peerTable
	income     peerTable
}

// Lookup returns the peer-group average for (value, category), or 0 when
// the table has no entry. Never errors: missing survey data is an expected
// condition, not a failure.
func (t *PeerTables) Lookup(group core.PeerGroup, value string, cat core.Category) int64 {
	var table peerTable
	switch group {
	case core.GroupGender:
		table = t.gender
	case core.GroupAge:
		table = t.age
	case core.GroupRegion:
		table = t.region
	case core.GroupOccupation:
		table = t.occupation
	case core.GroupIncome:
		table = t.income
	default:
		return 0
	}
	return table[value][cat]
}

// DefaultPeerTables returns the compiled-in consumer survey averages.
func DefaultPeerTables() *PeerTables {
	return &PeerTables{
		gender: peerTable{
			"male": {
				core.CategoryFood: 58, core.CategoryHousing: 42, core.CategoryTransport: 14,
				core.CategoryTelecom: 8, core.CategoryLeisure: 18, core.CategoryHousehold: 9,
				core.CategoryMedical: 5, core.CategoryContent: 3, core.CategoryEtc: 11,
			},
			"female": {
				core.CategoryFood: 49, core.CategoryHousing: 44, core.CategoryTransport: 11,
				core.CategoryTelecom: 7, core.CategoryLeisure: 21, core.CategoryHousehold: 12,
				core.CategoryMedical: 7, core.CategoryBeauty: 9, core.CategoryContent: 4,
				core.CategoryEtc: 10,
			},
		},
		age: peerTable{
			"19-24": {
				core.CategoryFood: 38, core.CategoryHousing: 25, core.CategoryTransport: 9,
				core.CategoryTelecom: 6, core.CategoryLeisure: 17, core.CategoryEducation: 12,
				core.CategoryContent: 4, core.CategoryEtc: 7,
			},
			"25-29": {
				core.CategoryFood: 52, core.CategoryHousing: 38, core.CategoryTransport: 12,
				core.CategoryTelecom: 7, core.CategoryLeisure: 22, core.CategoryHousehold: 8,
				core.CategoryContent: 4, core.CategoryEtc: 9,
			},
			"30-34": {
				core.CategoryFood: 61, core.CategoryHousing: 48, core.CategoryTransport: 15,
				core.CategoryTelecom: 8, core.CategoryLeisure: 20, core.CategoryHousehold: 11,
				core.CategoryMedical: 5, core.CategoryEtc: 11,
			},
			"35-39": {
				core.CategoryFood: 67, core.CategoryHousing: 52, core.CategoryTransport: 17,
				core.CategoryTelecom: 9, core.CategoryLeisure: 17, core.CategoryHousehold: 13,
				core.CategoryMedical: 6, core.CategoryEducation: 14, core.CategoryEtc: 12,
			},
			"40-44": {
				core.CategoryFood: 70, core.CategoryHousing: 50, core.CategoryTransport: 18,
				core.CategoryTelecom: 10, core.CategoryLeisure: 15, core.CategoryHousehold: 14,
				core.CategoryMedical: 8, core.CategoryEducation: 21, core.CategoryEtc: 12,
			},
			"45-49": {
				core.CategoryFood: 68, core.CategoryHousing: 45, core.CategoryTransport: 17,
				core.CategoryTelecom: 10, core.CategoryLeisure: 14, core.CategoryHousehold: 13,
				core.CategoryMedical: 9, core.CategoryEducation: 25, core.CategoryEtc: 13,
			},
			"50-54": {
				core.CategoryFood: 64, core.CategoryHousing: 40, core.CategoryTransport: 16,
				core.CategoryTelecom: 9, core.CategoryLeisure: 13, core.CategoryHousehold: 12,
				core.CategoryMedical: 11, core.CategoryEtc: 14,
			},
		},
		region: peerTable{
			"서울": {
				core.CategoryFood: 62, core.CategoryHousing: 58, core.CategoryTransport: 13,
				core.CategoryTelecom: 8, core.CategoryLeisure: 22, core.CategoryHousehold: 10,
				core.CategoryMedical: 6, core.CategoryEtc: 12,
			},
			"인천·경기·강원": {
				core.CategoryFood: 56, core.CategoryHousing: 44, core.CategoryTransport: 16,
				core.CategoryTelecom: 8, core.CategoryLeisure: 18, core.CategoryHousehold: 10,
				core.CategoryMedical: 6, core.CategoryEtc: 10,
			},
			"대전·세종·충청": {
				core.CategoryFood: 51, core.CategoryHousing: 36, core.CategoryTransport: 14,
				core.CategoryTelecom: 7, core.CategoryLeisure: 16, core.CategoryHousehold: 9,
				core.CategoryMedical: 5, core.CategoryEtc: 9,
			},
			"대구·경북": {
				core.CategoryFood: 49, core.CategoryHousing: 33, core.CategoryTransport: 13,
				core.CategoryTelecom: 7, core.CategoryLeisure: 15, core.CategoryHousehold: 9,
				core.CategoryMedical: 5, core.CategoryEtc: 9,
			},
			"부산·울산·경남": {
				core.CategoryFood: 52, core.CategoryHousing: 35, core.CategoryTransport: 14,
				core.CategoryTelecom: 7, core.CategoryLeisure: 16, core.CategoryHousehold: 9,
				core.CategoryMedical: 5, core.CategoryEtc: 9,
			},
			"광주·전라·제주": {
				core.CategoryFood: 48, core.CategoryHousing: 31, core.CategoryTransport: 13,
				core.CategoryTelecom: 7, core.CategoryLeisure: 15, core.CategoryHousehold: 8,
				core.CategoryMedical: 5, core.CategoryEtc: 8,
			},
		},
		occupation: peerTable{
			"대학생·대학원생": {
				core.CategoryFood: 36, core.CategoryHousing: 22, core.CategoryTransport: 8,
				core.CategoryTelecom: 6, core.CategoryLeisure: 16, core.CategoryEducation: 15,
				core.CategoryContent: 4, core.CategoryEtc: 6,
			},
			"직장인": {
				core.CategoryFood: 63, core.CategoryHousing: 47, core.CategoryTransport: 16,
				core.CategoryTelecom: 8, core.CategoryLeisure: 21, core.CategoryHousehold: 11,
				core.CategoryMedical: 6, core.CategoryEtc: 12,
			},
			"자영업자·개인사업자·법인사업자": {
				core.CategoryFood: 66, core.CategoryHousing: 45, core.CategoryTransport: 19,
				core.CategoryTelecom: 9, core.CategoryLeisure: 18, core.CategoryHousehold: 11,
				core.CategoryMedical: 7, core.CategoryEtc: 13,
			},
			"프리랜서·파트타임·아르바이트": {
				core.CategoryFood: 47, core.CategoryHousing: 34, core.CategoryTransport: 11,
				core.CategoryTelecom: 7, core.CategoryLeisure: 17, core.CategoryHousehold: 8,
				core.CategoryContent: 4, core.CategoryEtc: 9,
			},
			"전업주부": {
				core.CategoryFood: 58, core.CategoryHousing: 39, core.CategoryTransport: 9,
				core.CategoryTelecom: 7, core.CategoryLeisure: 12, core.CategoryHousehold: 15,
				core.CategoryMedical: 8, core.CategoryEducation: 18, core.CategoryEtc: 10,
			},
			"취업준비생·무직·기타": {
				core.CategoryFood: 33, core.CategoryHousing: 24, core.CategoryTransport: 7,
				core.CategoryTelecom: 6, core.CategoryLeisure: 10, core.CategoryEducation: 8,
				core.CategoryEtc: 6,
			},
		},
		income: peerTable{
			"100만원 미만": {
				core.CategoryFood: 34, core.CategoryHousing: 21, core.CategoryTransport: 8,
				core.CategoryTelecom: 6, core.CategoryLeisure: 11, core.CategoryEducation: 9,
				core.CategoryEtc: 6,
			},
			"100만원~300만원": {
				core.CategoryFood: 54, core.CategoryHousing: 40, core.CategoryTransport: 13,
				core.CategoryTelecom: 8, core.CategoryLeisure: 18, core.CategoryHousehold: 10,
				core.CategoryMedical: 5, core.CategoryEtc: 10,
			},
			"300만원 이상": {
				core.CategoryFood: 72, core.CategoryHousing: 56, core.CategoryTransport: 19,
				core.CategoryTelecom: 9, core.CategoryLeisure: 27, core.CategoryHousehold: 13,
				core.CategoryMedical: 8, core.CategoryEtc: 15,
			},
		},
	}
}
