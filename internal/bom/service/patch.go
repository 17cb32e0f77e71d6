package service

import "encoding/json"

// Patch 三态更新字段：区分"载荷中未出现"（保持原值）、"显式null"（清空）
// 与"携带新值"三种情况。普通指针字段无法表达前两者的差别，
// 可空列（customer_id、sample_image_url等）的部分更新必须用它
type Patch[T any] struct {
	Set   bool // 字段是否出现在载荷中
	Valid bool // 是否携带非null值
	Value T
}

func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &p.Value); err != nil {
		return err
	}
	p.Valid = true
	return nil
}

// Ptr 返回写入可空列的指针，显式null时为nil
func (p Patch[T]) Ptr() *T {
	if !p.Valid {
		return nil
	}
	v := p.Value
	return &v
}

// jsonHasKey 判断原始载荷中是否出现了指定键（包括显式null）
func jsonHasKey(data []byte, key string) bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}
