package assistant

import (
	"context"
	"fmt"
	"strings"

	"react-golang/internal/schedule"
)

// maxReportRows bounds the summary handed to the model.
const maxReportRows = 10

const reportPrompt = `你是一位专业的 ERP 生产计划专家。
请根据以下生产排程数据摘要，用中文生成一份简短的“生产排程分析日报”。

数据摘要：
%s

要求：
1. 使用专业的语气。
2. 总结各个车间的总负荷情况。
3. 识别出是否有“待排”状态的计划。
4. 给出排程建议。
5. 使用 Markdown 格式输出。`

// Reporter generates the daily schedule-analysis report.
type Reporter struct {
	client Client
}

func NewReporter(client Client) *Reporter {
	return &Reporter{client: client}
}

// Summarize renders the bounded textual summary of the row set: at
// most ten rows, one line each with code, product, workshop, total
// scheduled quantity and status.
func Summarize(rows schedule.Rows) string {
	if len(rows) > maxReportRows {
		rows = rows[:maxReportRows]
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("ID:%s, 产品:%s, 车间:%s, 总数量:%d, 状态:%s",
			r.Code, r.ProductName, r.Workshop, r.TotalQuantity(), r.Status))
	}
	return strings.Join(lines, "\n")
}

// DailyReport returns the generated report text, or a user-facing
// diagnostic string on failure. This path never propagates an error:
// the caller always gets something to display.
func (r *Reporter) DailyReport(ctx context.Context, rows schedule.Rows) string {
	prompt := fmt.Sprintf(reportPrompt, Summarize(rows))

	text, err := r.client.Chat(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return Diagnostic(err)
	}
	if text == "" {
		return "生成日报失败：无内容返回。"
	}
	return text
}
