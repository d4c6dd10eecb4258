// Package catalog holds the compiled-in reference data: the six spending
// character archetypes with their recommended cards, and the peer-group
// average tables used for demographic comparison. The data is fixed at
// build time and never mutated at runtime.
package catalog

import "sobi/internal/core"

// Shared card definitions. Several archetypes recommend the same card.
var (
	cardSamsungIDMove = core.Card{
		Name:     "삼성 iD MOVE 카드",
		Issuer:   "삼성카드",
		Benefits: "대중교통 10%할인\n택시 10%할인\n해외 항공철도 1.5%할인",
		Link:     "https://www.samsungcard.com/home/card/cardinfo/PGHPPCCCardCardinfoDetails001?code=AAP1762&alncmpC=CYBERBR&affcode=QFBANKTEST04&webViewFirstPage=true",
	}
	cardIBKGreen = core.Card{
		Name:     "IBK I-어디로든 그린카드",
		Issuer:   "IBK기업은행",
		Benefits: "친환경 자동차 40%\n대중교통 10%\n공유 모빌리티 10%",
		Link:     "https://cardapplication.ibk.co.kr/card/index.do?card_prdc_id=103214&ad_cd=bspc&mz_cd=IRAINST",
	}
	cardShinhanBBig = core.Card{
		Name:     "신한 B.Big",
		Issuer:   "신한카드",
		Benefits: "대중교통 최대 18000원 할인\n택시 10%할인",
		Link:     "https://www.shinhancard.com/pconts/html/card/apply/credit/1187938_2207.html?EntryLoc2=2739&empSeq=944&btnApp=DP0T1U3",
	}
	cardHanaWonder = core.Card{
		Name:     "하나 원더카드",
		Issuer:   "하나카드",
		Benefits: "생활요금 10%\n영상스트리밍 40%\n딜리버리 10%\n편의점 10%",
		Link:     "https://m.hanacard.co.kr/MKCDCM1010M.web?CD_PD_SEQ=17499",
	}
	cardBCClearPlus = core.Card{
		Name:     "BC 바로 클리어 플러스",
		Issuer:   "BC카드",
		Benefits: "배달앱 7%\n편의점 10%\n스트리밍 10%",
		Link:     "https://app.paybooc.co.kr/ui/card-mgt/card-mgt/pybc-card/card-dts?cardPdctCd=101922&incnChnlDv=Mobile&affiCd=B009",
	}
	cardLotteLoca365 = core.Card{
		Name:     "롯데 LOCA 365",
		Issuer:   "롯데카드",
		Benefits: "관리비·공과금 10%\n배달앱 10%\n스트리밍 1500원할인",
		Link:     "https://www.lottecard.co.kr/app/LPBOHAA_V100.lc?bId=93929&vtCdKndC=P14028-A14028",
	}
	cardIBKDaiso = core.Card{
		Name:     "IBK 참!좋은다이소 카드",
		Issuer:   "IBK기업카드",
		Benefits: "커피 20%할인\nCGV·롯데시네마 4천원 할인\n다이소 컬렉션 앱 30% 청구할인",
		Link:     "https://cardapplication.ibk.co.kr/card/index.do?card_prdc_id=756299&ad_cd=bspc&mz_cd=IRAINST",
	}
	cardSamsungIDOn = core.Card{
		Name:     "삼성 iD ON카드",
		Issuer:   "삼성카드",
		Benefits: "많이쓰는영역 30%\n커피 30%\n교통 10%",
		Link:     "https://www.samsungcard.com/home/card/cardinfo/PGHPPCCCardCardinfoDetails001?code=AAP1731&alncmpC=CYBERBR&affcode=QFBANKTEST04&webViewFirstPage=true",
	}
	cardKBYouth = core.Card{
		Name:     "국민 청춘대로 톡톡카드",
		Issuer:   "KB국민카드",
		Benefits: "스타벅스 50%\n패스트푸드 20%\n간편결제 10%\n대중교통 10%",
		Link:     "https://card.kbcard.com/CRD/DVIEW/HCAMCXPRICAC0076?mainCC=a&cooperationcode=09174",
	}
	cardKBWeshAll = core.Card{
		Name:     "국민 WE:SH All 카드",
		Issuer:   "KB국민카드",
		Benefits: "쇼핑 멤버십 50%\nOTT 10%\n이동통신 5%",
		Link:     "https://card.kbcard.com/CRD/DVIEW/HCAMCXPRICAC0076?mainCC=a&cooperationcode=09922",
	}
	cardShinhanDeepOn = core.Card{
		Name:     "신한 Deep On Platinum+",
		Issuer:   "신한카드",
		Benefits: "간편결제 20%\n월납 서비스 20%\n편의점 20%",
		Link:     "https://www.shinhancard.com/pconts/html/card/apply/credit/1188280_2207.html?EntryLoc2=2916&empSeq=563&btnApp=DP0T1U3",
	}
)

// archetypes is the fixed catalogue. Order is significant: the matcher
// breaks distance ties by taking the first entry, so this slice must keep
// its enumeration order stable across releases.
//
// The pattern vectors are taken verbatim from the deployed product and are
// not renormalized even where they would not sum to 100.
var archetypes = []core.Archetype{
	{
		ID:          "tiger",
		Name:        "호균이",
		TypeLabel:   "균형형",
		Description: "모든 분야에 고르게 소비하는 균형잡힌 타입",
		Pattern:     core.Profile{Food: 49, Transport: 17, Telecom: 17, Leisure: 17},
		Traits: []string{
			"계획적이고 안정적인 소비 패턴",
			"어느 한 분야에 치우치지 않는 균형감",
			"전반적으로 합리적인 지출 관리",
		},
		Tips: []string{
			"현재 균형잡힌 소비를 유지하고 계세요!",
			"각 카테고리별 예산을 더 세분화해보세요",
			"정기적인 가계부 점검으로 균형을 유지하세요",
		},
		Color: "#FF6B35",
		Emoji: "🐅",
		Cards: []core.Card{cardHanaWonder, cardSamsungIDMove, cardKBYouth},
	},
	{
		ID:          "horse",
		Name:        "대중교통 말스터",
		TypeLabel:   "교통 위주형",
		Description: "이동과 교통에 많은 비용을 투자하는 활동적인 타입",
		Pattern:     core.Profile{Food: 62, Transport: 38},
		Traits: []string{
			"활동적이고 이동이 많은 라이프스타일",
			"교통비 지출이 상당한 비중 차지",
			"통신이나 여가보다 실용적 소비 선호",
		},
		Tips: []string{
			"대중교통 정기권이나 할인 혜택을 활용해보세요",
			"카풀이나 공유 교통수단 이용을 고려해보세요",
			"통신비와 여가비도 조금씩 투자해보세요",
		},
		Color: "#8B4513",
		Emoji: "🐎",
		Cards: []core.Card{cardSamsungIDMove, cardIBKGreen, cardShinhanBBig},
	},
	{
		ID:          "panda",
		Name:        "푸드판다",
		TypeLabel:   "식비 위주형",
		Description: "먹는 것을 가장 중요하게 생각하는 미식가 타입",
		Pattern:     core.Profile{Food: 78, Telecom: 22},
		Traits: []string{
			"음식과 식사에 대한 높은 관심과 투자",
			"집에서 보내는 시간이 많음",
			"기본적인 통신비 외 다른 지출 최소화",
		},
		Tips: []string{
			"홈쿡을 늘려서 식비를 절약해보세요",
			"할인 혜택이나 쿠폰을 적극 활용하세요",
			"교통비나 여가비에도 소액 투자를 고려해보세요",
		},
		Color: "#000000",
		Emoji: "🐼",
		Cards: []core.Card{cardBCClearPlus, cardIBKDaiso, cardKBYouth},
	},
	{
		ID:          "bird",
		Name:        "메새지",
		TypeLabel:   "통신 위주형",
		Description: "소통과 연결을 중시하는 디지털 네이티브 타입",
		Pattern:     core.Profile{Food: 26, Transport: 32, Telecom: 42},
		Traits: []string{
			"디지털 기기와 통신 서비스에 높은 관심",
			"온라인 활동이 활발함",
			"이동도 어느 정도 있지만 통신이 우선",
		},
		Tips: []string{
			"통신 요금제를 정기적으로 점검하고 최적화하세요",
			"불필요한 구독 서비스는 정리해보세요",
			"여가비도 조금씩 늘려서 오프라인 활동을 해보세요",
		},
		Color: "#87CEEB",
		Emoji: "🐦",
		Cards: []core.Card{cardKBWeshAll, cardSamsungIDMove, cardShinhanDeepOn},
	},
	{
		ID:          "dog",
		Name:        "칠도그",
		TypeLabel:   "여가 위주형",
		Description: "놀이와 즐거움을 추구하는 활발한 타입",
		Pattern:     core.Profile{Food: 59, Transport: 6, Telecom: 6, Leisure: 29},
		Traits: []string{
			"여가와 엔터테인먼트에 적극적 투자",
			"즐거움과 경험을 중시하는 성향",
			"기본 생활비와 여가비의 조화",
		},
		Tips: []string{
			"여가 활동 예산을 미리 계획해보세요",
			"그룹 할인이나 멤버십 혜택을 활용하세요",
			"교통비와 통신비도 조금 더 투자해보세요",
		},
		Color: "#D2691E",
		Emoji: "🐕",
		Cards: []core.Card{cardIBKDaiso, cardSamsungIDOn, cardKBYouth},
	},
	{
		ID:          "cat",
		Name:        "집콕냥이",
		TypeLabel:   "절약형",
		Description: "여가비 제로! 실용적이고 검소한 생활을 추구하는 타입",
		Pattern:     core.Profile{Food: 59, Transport: 20, Telecom: 21},
		Traits: []string{
			"여가비 지출을 하지 않는 절약형",
			"필수 생활비에만 집중하는 실용주의",
			"계획적이고 신중한 소비 패턴",
		},
		Tips: []string{
			"절약하는 습관이 훌륭해요!",
			"가끔은 작은 여가비 투자로 삶의 질을 높여보세요",
			"현재 패턴을 유지하면서 비상금을 늘려보세요",
		},
		Color: "#696969",
		Emoji: "🐱",
		Cards: []core.Card{cardHanaWonder, cardBCClearPlus, cardLotteLoca365},
	},
}

// Archetypes returns the six spending characters in catalogue order.
func Archetypes() []core.Archetype {
	out := make([]core.Archetype, len(archetypes))
	copy(out, archetypes)
	return out
}

// ArchetypeByID looks up one archetype. The second return is false when the
// id is not in the catalogue.
func ArchetypeByID(id string) (core.Archetype, bool) {
	for _, a := range archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return core.Archetype{}, false
}
