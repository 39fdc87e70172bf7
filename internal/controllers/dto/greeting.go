// Package dto 提供控制器层的请求解析工具。
// 单独的 dto 层可以隔离协议载荷与业务用例之间的转换逻辑。
package dto

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/bionicotaku/lingo-services-greeter/internal/services"

	"github.com/google/uuid"
)

// CreateGreetingRequest 是 POST /v1/greetings 的请求体。
type CreateGreetingRequest struct {
	Suffix string `json:"suffix"`
}

// ParseGreetingID 解析路径参数中的问候记录 ID。
func ParseGreetingID(raw string) (uuid.UUID, error) {
	greetingID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid greeting_id: %w", err)
	}
	return greetingID, nil
}

// ToListGreetingsInput 将查询参数映射为服务层输入。
// suffix 出现即参与过滤（允许空字符串，与夹具接受空后缀一致）。
func ToListGreetingsInput(query url.Values) (services.ListGreetingsInput, error) {
	input := services.ListGreetingsInput{}

	if query.Has("suffix") {
		suffix := query.Get("suffix")
		input.Suffix = &suffix
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return services.ListGreetingsInput{}, fmt.Errorf("invalid limit: %q", raw)
		}
		input.Limit = limit
	}

	return input, nil
}
