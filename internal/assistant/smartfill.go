package assistant

import (
	"context"
	"fmt"
	"time"

	"react-golang/internal/schedule"
)

const smartFillPrompt = `你是一个排程助手。用户希望自动分配、修改或删除每日生产数量。
当前起始日期：%s。
用户指令：“%s”

请根据指令生成需要变更的日期数据。

规则：
1. 仅返回 JSON 数组。不要包含 Markdown 代码块标记 (如 ` + "```json" + `)。
2. 格式示例：[{"date": "2024-05-20", "qty": 100}, {"date": "2024-05-21", "qty": 0}]
3. 如果用户想要“删除”、“清除”、“清空”或“取消”，请将 qty 设置为 0。
4. 根据当前起始日期推断具体日期。`

// Planner turns natural-language fill instructions into ordered edit
// batches for a single row.
type Planner struct {
	client Client
}

func NewPlanner(client Client) *Planner {
	return &Planner{client: client}
}

// PlanEdits asks the model for the edits implied by instruction,
// relative to referenceDate (canonical YYYY-MM-DD). A structurally
// invalid response is an error and yields no edits at all, never a
// partial batch.
func (p *Planner) PlanEdits(ctx context.Context, referenceDate, instruction string) ([]schedule.Edit, error) {
	prompt := fmt.Sprintf(smartFillPrompt, referenceDate, instruction)

	var edits []schedule.Edit
	if err := p.client.ChatJSON(ctx, []Message{{Role: "user", Content: prompt}}, &edits); err != nil {
		return nil, fmt.Errorf("smart fill: %w", err)
	}

	for _, e := range edits {
		if _, err := time.Parse(schedule.DayKeyLayout, e.Date); err != nil {
			return nil, fmt.Errorf("smart fill: invalid date %q in response", e.Date)
		}
		if e.Qty < 0 {
			return nil, fmt.Errorf("smart fill: negative quantity %d for %s", e.Qty, e.Date)
		}
	}
	return edits, nil
}
