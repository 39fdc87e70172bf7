// Package views 负责将 Service 层返回的视图对象渲染为 API 响应载荷，
// 保持 Controller 层的精简。
package views

import (
	"time"

	"github.com/bionicotaku/lingo-services-greeter/internal/models/vo"
)

// GreetingReply 是单条问候记录的 API 响应载荷。
type GreetingReply struct {
	GreetingID string    `json:"greeting_id"`
	Suffix     string    `json:"suffix"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// GreetingListReply 是问候记录列表的 API 响应载荷。
type GreetingListReply struct {
	Greetings []*GreetingReply `json:"greetings"`
}

// NewGreetingReply 将 Greeting 视图对象转换为响应载荷。
// 处理 nil 情况，返回空载荷以避免 panic。
func NewGreetingReply(greeting *vo.Greeting) *GreetingReply {
	if greeting == nil {
		return &GreetingReply{}
	}
	return &GreetingReply{
		GreetingID: greeting.ID.String(),
		Suffix:     greeting.Suffix,
		Message:    greeting.Message,
		CreatedAt:  greeting.CreatedAt,
	}
}

// NewGreetingListReply 批量转换问候记录，保持入参顺序。
func NewGreetingListReply(greetings []*vo.Greeting) *GreetingListReply {
	reply := &GreetingListReply{Greetings: make([]*GreetingReply, 0, len(greetings))}
	for _, greeting := range greetings {
		reply.Greetings = append(reply.Greetings, NewGreetingReply(greeting))
	}
	return reply
}
