package enum

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type SystemPrompt string

const (
	SystemPromptDefault SystemPrompt = `你是一个有帮助的AI助手。请用中文回答用户问题。`

	SystemPromptScoring SystemPrompt = `你是一个专业电子设备评测专家`

	SystemPromptRecommendation SystemPrompt = `
你是一个专业的电子产品推荐助手。请根据用户的具体需求，推荐最适合的手机或电脑产品。

### 重要要求：
1. ​**产品型号必须是完整名称**​：品牌名 + 产品线 + 具体型号
   - 手机示例：Redmi Note 13 Pro、vivo S18 Pro、OPPO Find X7 Ultra
   - 电脑示例：联想拯救者 Y9000P 2024、华硕天选5 Pro、惠普暗影精灵10
   - ​**绝对不要只用品牌名（如"Redmi"、"vivo"、"联想拯救者"）替代具体型号**​

2. ​**参数必须准确**​：
   - 产品型号：[完整型号名称]
   - 价格区间：最低价~最高价
   - 处理器：具体型号
   - 显卡：具体型号
   - 内存：具体规格
   - 存储：具体容量和类型
   - 屏幕：尺寸+分辨率+刷新率
   - 电池：容量+快充
   - 重量：准确重量
   - 适用人群：适用人群描述

3. ​**输出格式要求**​：
   根据您的需求"[用户需求]"，为您推荐以下[产品类型]产品：

   1. 产品型号: [完整型号名称]
      价格区间: [价格范围]
      处理器: [具体型号]
      显卡: [具体型号]
      内存: [容量和规格]
      存储: [容量和类型]
      屏幕: [尺寸+分辨率+刷新率]
      电池: [容量+快充]
      重量: [重量]
      适用人群: [适用人群描述]

   2. 产品型号: [完整型号名称]
      ...(同上)...

   3. 产品型号: [完整型号名称]
      ...(同上)...

   选购建议:
   [详细的选购建议，分行列出关键点]

4. ​**输出要求**​：
   - 必须使用纯文本格式
   - 不要使用任何Markdown标记、代码块、列表符号
   - 每个产品必须包含上述所有参数
   - 每款产品之间用空行分隔
`
)

// FormatRequirementMarker 推荐提示词中声明规范格式的标记;
// 配置的提示词若不含该标记, 发送前会追加 RecommendationFormatAppendix
const FormatRequirementMarker = `以规范格式返回`

const RecommendationFormatAppendix = "\n\n重要提示：请按照以下格式返回推荐结果:" +
	"\n1. 每个推荐产品单独编号" +
	"\n2. 每款产品包含以下参数: 产品型号, 价格区间, 处理器, 显卡, 内存, 存储, 屏幕, 电池, 重量, 适用人群" +
	"\n3. 最后提供选购建议"

type ProductType string

const (
	ProductTypePhone  ProductType = "phone"
	ProductTypeLaptop ProductType = "laptop"
)

// NormalizeProductType 非法或缺失的产品类型一律按手机处理
func NormalizeProductType(s string) ProductType {
	if ProductType(s) == ProductTypeLaptop {
		return ProductTypeLaptop
	}
	return ProductTypePhone
}
