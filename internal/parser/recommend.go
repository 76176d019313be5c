// Package parser 把LLM返回的松散文本尽力解析为结构化数据。
// 文本格式只是提示词"请求"出来的, 并非强制契约, 因此这里的所有提取都是
// 尽力而为: 单项缺失只会降级为占位值或跳过该项, 绝不导致整体失败。
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ProductRecord 一条结构化的产品推荐
type ProductRecord struct {
	Name  string            `json:"name"`
	Price string            `json:"price"`
	Specs map[string]string `json:"specs"`
}

// RecommendationResult 推荐解析的整体结果
type RecommendationResult struct {
	Intro           string          `json:"intro"`
	Recommendations []ProductRecord `json:"recommendations"`
	Tips            string          `json:"tips"`
	ProductType     string          `json:"product_type"`
}

// SkipReason 单个片段被丢弃的原因, 仅用于诊断日志
type SkipReason string

const (
	SkipTipsSection    SkipReason = "片段属于选购建议"
	SkipNoAudience     SkipReason = "片段缺少适用人群字段"
	SkipNoSpecsMatched SkipReason = "未提取到任何规格参数"
)

// SectionSkip 记录第几个片段因何被跳过
type SectionSkip struct {
	Index  int
	Reason SkipReason
}

func (s SectionSkip) String() string {
	return fmt.Sprintf("片段%d: %s", s.Index, s.Reason)
}

// PriceNotProvided 未能提取到价格时的占位值
const PriceNotProvided = "价格未提供"

// SpecFields 固定的规格字段词表, 提取结果只会包含其中匹配到的键
var SpecFields = []string{"处理器", "显卡", "内存", "存储", "屏幕", "电池", "重量", "适用人群"}

const audienceField = "适用人群"
const tipsMarker = "选购建议"

var (
	// 按行首的数字编号切分产品片段
	sectionSplitRe = regexp.MustCompile(`\n\s*\d+\.\s+`)

	introRe = regexp.MustCompile(`根据您的需求".*?"，为您推荐以下(.*?)产品：([\s\S]*?)(\d+\.|\n选购建议)`)
	tipsRe  = regexp.MustCompile(`选购建议[:：]?([\s\S]+)`)

	modelFieldRe = regexp.MustCompile(`型号\s*[:：]\s*([^\n]+)`)
	brandFieldRe = regexp.MustCompile(`品牌\s*[:：]\s*([^\n]+)`)

	priceFieldRe    = regexp.MustCompile(`价格区间\s*[:：]\s*([^\n]+)`)
	priceFallbackRe = regexp.MustCompile(`(\d+)\s*元\s*[到至~-]\s*(\d+)\s*元`)

	// 名称提取后需剥离的编号/标签前缀
	namePrefixRe = regexp.MustCompile(`^\d+\.\s*|产品型号\s*[:：]\s*`)

	// 名称兜底: 取首个规格字段标签之前的全部内容
	nameFieldSplitRe = regexp.MustCompile(`\n(处理器:|内存:|存储:|价格区间:|适用人群:)`)

	specRes = buildSpecRes()
)

func buildSpecRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(SpecFields))
	for _, field := range SpecFields {
		res[field] = regexp.MustCompile(field + `\s*[:：]\s*([^\n]+)`)
	}
	return res
}

// nameRule 名称提取规则, 按优先级依次尝试, 首个命中者生效
type nameRule struct {
	desc string
	re   *regexp.Regexp
}

var nameRules = []nameRule{
	{"产品型号标签", regexp.MustCompile(`产品型号\s*[:：]\s*([^\n]+)`)},
	{"括号前内容", regexp.MustCompile(`^(.+?)(?:（|\()[^)]+`)},
	{"冒号前内容", regexp.MustCompile(`^(.+?)[:：]`)},
	{"连续空格前内容", regexp.MustCompile(`^(.+?)\s{2,}`)},
}

// ParseRecommendations 把推荐回复文本解析为结构化结果。
// ok为false表示没有任何片段产出有效记录, 调用方应回退为原始文本。
// 纯函数, 相同输入必然得到相同输出。
func ParseRecommendations(raw string) (result *RecommendationResult, skips []SectionSkip, ok bool) {
	sections := splitSections(raw)

	records := make([]ProductRecord, 0, len(sections))
	for i, section := range sections {
		record, skip := parseSection(section)
		if skip != "" {
			skips = append(skips, SectionSkip{Index: i + 1, Reason: skip})
			continue
		}
		records = append(records, *record)
	}

	if len(records) == 0 {
		return nil, skips, false
	}

	return &RecommendationResult{
		Intro:           extractIntro(raw),
		Recommendations: records,
		Tips:            extractTips(raw),
	}, skips, true
}

func splitSections(raw string) []string {
	parts := sectionSplitRe.Split(raw, -1)
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sections = append(sections, p)
		}
	}
	return sections
}

func extractIntro(raw string) string {
	if m := introRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[2])
	}
	return ""
}

func extractTips(raw string) string {
	if m := tipsRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseSection 解析单个产品片段, 失败时返回跳过原因而非错误
func parseSection(section string) (*ProductRecord, SkipReason) {
	// 选购建议以及缺少适用人群的片段视为非产品内容(如结尾的补充说明)
	if strings.Contains(section, tipsMarker) {
		return nil, SkipTipsSection
	}
	if !strings.Contains(section, audienceField) {
		return nil, SkipNoAudience
	}

	specs := extractSpecs(section)
	if len(specs) == 0 {
		return nil, SkipNoSpecsMatched
	}

	return &ProductRecord{
		Name:  extractName(section),
		Price: extractPrice(section),
		Specs: specs,
	}, ""
}

func extractName(section string) string {
	var name string
	for _, rule := range nameRules {
		if m := rule.re.FindStringSubmatch(section); m != nil {
			name = strings.TrimSpace(m[1])
			break
		}
	}

	// 兜底: 取首个规格字段标签之前的内容
	if name == "" {
		name = strings.TrimSpace(nameFieldSplitRe.Split(section, 2)[0])
	}

	name = strings.TrimSpace(namePrefixRe.ReplaceAllString(name, ""))

	return augmentName(name, section)
}

// augmentName 名称疑似缺少具体型号(词数不足或不含数字)时,
// 先尝试拼接显式的型号字段, 其次把品牌字段拼到前面。两者都没有则原样返回。
func augmentName(name, section string) string {
	if len(strings.Fields(name)) >= 2 && containsDigit(name) {
		return name
	}

	if m := modelFieldRe.FindStringSubmatch(section); m != nil {
		return strings.TrimSpace(name + " " + strings.TrimSpace(m[1]))
	}
	if m := brandFieldRe.FindStringSubmatch(section); m != nil && name != "" {
		return strings.TrimSpace(m[1]) + " " + name
	}
	return name
}

func containsDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func extractPrice(section string) string {
	price := PriceNotProvided
	if m := priceFieldRe.FindStringSubmatch(section); m != nil {
		price = strings.TrimSpace(m[1])
	}

	// 已是区间形式则保留, 否则尝试把"N元 到 M元"归一化为"N~M元"
	if !strings.Contains(price, "~") && !strings.Contains(price, "至") {
		if m := priceFallbackRe.FindStringSubmatch(section); m != nil {
			price = m[1] + "~" + m[2] + "元"
		}
	}
	return price
}

func extractSpecs(section string) map[string]string {
	specs := make(map[string]string, len(SpecFields))
	for _, field := range SpecFields {
		if m := specRes[field].FindStringSubmatch(section); m != nil {
			specs[field] = strings.TrimSpace(m[1])
		}
	}
	return specs
}
