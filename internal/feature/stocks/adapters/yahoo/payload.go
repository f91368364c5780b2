package yahoo

import (
	"errors"
	"fmt"
	"time"
)

// errUnexpectedShape は上流ペイロードの構造が想定外（型不一致）であることを示します。
// 欠損やnullはこのエラーにはならず、各フィールドの「値なし」として扱います。
var errUnexpectedShape = errors.New("unexpected upstream payload shape")

func shapeError(path string, v any) error {
	return fmt.Errorf("%w: %s is %T", errUnexpectedShape, path, v)
}

// object はvをJSONオブジェクトとして取り出します。
// 欠損・nullは(nil, nil)、オブジェクト以外の型はエラーです。
func object(v any, path string) (map[string]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return t, nil
	default:
		return nil, shapeError(path, v)
	}
}

// array はvをJSON配列として取り出します。欠損・nullは(nil, nil)です。
func array(v any, path string) ([]any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return t, nil
	default:
		return nil, shapeError(path, v)
	}
}

// number returns v as a float64 when it is a JSON number.
func number(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// optNumber は数値フィールドを任意値として返します。数値以外は値なしです。
func optNumber(m map[string]any, key string) *float64 {
	f, ok := number(m[key])
	if !ok {
		return nil
	}
	return &f
}

// text は空でない文字列のみを返します。
func text(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func optText(m map[string]any, key string) *string {
	s, ok := text(m, key)
	if !ok {
		return nil
	}
	return &s
}

// fromEpoch converts fractional epoch seconds to a UTC time.
func fromEpoch(sec float64) time.Time {
	whole := int64(sec)
	frac := int64((sec - float64(whole)) * float64(time.Second))
	return time.Unix(whole, frac).UTC()
}

// indexNumber returns arr[i] as a float64; out-of-range, null and non-numeric entries report false.
func indexNumber(arr []any, i int) (float64, bool) {
	if i < 0 || i >= len(arr) {
		return 0, false
	}
	return number(arr[i])
}
