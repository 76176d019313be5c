package parser

import "regexp"

// ScoreDimensions 设备评分的维度, 与评分提示词中的格式要求一一对应
var ScoreDimensions = []string{"处理器性能", "电池续航", "屏幕显示", "摄像头质量", "系统流畅度", "性价比", "总评"}

// ScoreNotAvailable 某维度未能从回复中提取到评分时的占位值
const ScoreNotAvailable = "N/A"

var scoreRes = buildScoreRes()

func buildScoreRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(ScoreDimensions))
	for _, dim := range ScoreDimensions {
		res[dim] = regexp.MustCompile(dim + `: (\d+\.\d+)分`)
	}
	return res
}

// ParseScores 从评测回复中提取各维度评分, 未命中的维度为"N/A"
func ParseScores(raw string) map[string]string {
	scores := make(map[string]string, len(ScoreDimensions))
	for _, dim := range ScoreDimensions {
		if m := scoreRes[dim].FindStringSubmatch(raw); m != nil {
			scores[dim] = m[1]
		} else {
			scores[dim] = ScoreNotAvailable
		}
	}
	return scores
}
