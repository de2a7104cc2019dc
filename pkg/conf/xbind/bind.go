package xbind

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/omeyang/xcfg/pkg/conf/xconf"
)

// Bind 把配置树绑定到 target 指向的值。绑定是深合并：来源中缺失
// 的部分保留 target 的既有内容。在副本上工作，失败时 target 不变。
func Bind(c xconf.Configuration, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}

	dest := rv.Elem()
	scratch := reflect.New(dest.Type()).Elem()
	// 浅拷贝作起点即可：绑定过程从不穿透共享引用原地修改，
	// 容器与指针指向对象一律新建后替换
	scratch.Set(dest)

	if err := bindNode(node{cfg: c}, scratch); err != nil {
		return err
	}

	dest.Set(scratch)
	return nil
}

// BindKey 绑定指定 Section。Section 不存在时不做任何事。
func BindKey(c xconf.Configuration, key string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}

	section := c.Section(key)
	if !section.Exists() {
		return nil
	}
	return Bind(section, target)
}

// node 绑定游标：当前路径上的配置视图。
type node struct {
	cfg xconf.Configuration
}

func (n node) value() (string, bool) {
	if s, ok := n.cfg.(xconf.Section); ok {
		return s.Value()
	}
	return "", false
}

func (n node) path() string {
	if s, ok := n.cfg.(xconf.Section); ok {
		return s.Path()
	}
	return ""
}

func (n node) exists() bool {
	if s, ok := n.cfg.(xconf.Section); ok {
		return s.Exists()
	}
	return true
}

func (n node) child(key string) node {
	return node{cfg: n.cfg.Section(key)}
}

func bindNode(n node, v reflect.Value) error {
	if u, ok := asTextUnmarshaler(v); ok {
		raw, present := n.value()
		if !present || raw == "" {
			return nil
		}
		if err := u.UnmarshalText([]byte(raw)); err != nil {
			return &BindError{Key: n.path(), Type: v.Type(), Err: err}
		}
		return nil
	}

	switch v.Kind() {
	case reflect.Pointer:
		return bindPointer(n, v)
	case reflect.Struct:
		return bindStruct(n, v)
	case reflect.Slice:
		return bindSlice(n, v)
	case reflect.Array:
		return bindArray(n, v)
	case reflect.Map:
		return bindMap(n, v)
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		raw, ok := n.value()
		if !ok {
			return nil
		}
		return assign(v, n.path(), raw)
	default:
		if _, ok := n.value(); ok || len(n.cfg.Children()) > 0 {
			return &BindError{
				Key:  n.path(),
				Type: v.Type(),
				Err:  fmt.Errorf("unsupported kind %s", v.Kind()),
			}
		}
		return nil
	}
}

// bindPointer 只在对应 Section 存在时分配。既有指向对象先克隆，
// 保证失败时原值不被波及。
func bindPointer(n node, v reflect.Value) error {
	elem := reflect.New(v.Type().Elem())
	if !v.IsNil() {
		elem.Elem().Set(v.Elem())
	}
	if err := bindNode(n, elem.Elem()); err != nil {
		return err
	}
	v.Set(elem)
	return nil
}

func bindStruct(n node, v reflect.Value) error {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("conf"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}

		// Section 查询本身不区分大小写，字段名匹配随之成立
		child := n.child(name)
		if !child.exists() {
			continue
		}
		if err := bindNode(child, v.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func bindSlice(n node, v reflect.Value) error {
	ranks := indexedChildren(n)
	if len(ranks) == 0 {
		return nil
	}

	out := reflect.MakeSlice(v.Type(), len(ranks), len(ranks))
	for i, child := range ranks {
		elem := out.Index(i)
		if i < v.Len() {
			// 存活位次上的既有元素参与深合并
			elem.Set(v.Index(i))
		}
		if err := bindNode(child, elem); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

func bindArray(n node, v reflect.Value) error {
	ranks := indexedChildren(n)
	if len(ranks) == 0 {
		return nil
	}

	out := reflect.New(v.Type()).Elem()
	out.Set(v)

	limit := min(len(ranks), v.Len())
	for i := range limit {
		if err := bindNode(ranks[i], out.Index(i)); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

// indexedChildren 返回可作序列下标的子节点，按下标数值稳定排序，
// 解析为同一下标的重复键只保留先出现者。
func indexedChildren(n node) []node {
	type candidate struct {
		index uint64
		node  node
	}

	var cands []candidate
	for _, child := range n.cfg.Children() {
		idx, err := strconv.ParseUint(child.Key(), 10, 64)
		if err != nil {
			continue
		}
		cands = append(cands, candidate{index: idx, node: node{cfg: child}})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].index < cands[j].index
	})

	out := make([]node, 0, len(cands))
	var last uint64
	for i, c := range cands {
		if i > 0 && c.index == last {
			continue
		}
		last = c.index
		out = append(out, c.node)
	}
	return out
}

func bindMap(n node, v reflect.Value) error {
	children := n.cfg.Children()
	if len(children) == 0 {
		return nil
	}

	t := v.Type()
	out := reflect.MakeMapWithSize(t, v.Len()+len(children))
	if !v.IsNil() {
		it := v.MapRange()
		for it.Next() {
			out.SetMapIndex(it.Key(), it.Value())
		}
	}

	seen := make(map[any]string, len(children))
	for _, sec := range children {
		key := reflect.New(t.Key()).Elem()
		if err := decodeMapKey(key, sec.Key()); err != nil {
			return &BindError{Key: sec.Path(), Type: t.Key(), Err: err}
		}

		ik := key.Interface()
		if prev, dup := seen[ik]; dup {
			return &BindError{
				Key:  sec.Path(),
				Type: t.Key(),
				Err:  fmt.Errorf("map key collides with segment %q", prev),
			}
		}
		seen[ik] = sec.Key()

		elem := reflect.New(t.Elem()).Elem()
		if existing := out.MapIndex(key); existing.IsValid() {
			elem.Set(existing)
		}
		if err := bindNode(node{cfg: sec}, elem); err != nil {
			return err
		}
		out.SetMapIndex(key, elem)
	}

	v.Set(out)
	return nil
}

// decodeMapKey 把键段解码为映射键。非 string 键采用可逆的朴素
// 编码：十进制整数、"true"/"false"。
func decodeMapKey(key reflect.Value, segment string) error {
	switch key.Kind() {
	case reflect.String:
		key.SetString(segment)
	case reflect.Bool:
		b, err := strconv.ParseBool(segment)
		if err != nil {
			return err
		}
		key.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(segment, 10, key.Type().Bits())
		if err != nil {
			return err
		}
		key.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(segment, 10, key.Type().Bits())
		if err != nil {
			return err
		}
		key.SetUint(u)
	default:
		return fmt.Errorf("unsupported map key kind %s", key.Kind())
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// assign 把原始字符串写入标量。空串只对 string 是值，
// 其余类型视同缺失。
func assign(v reflect.Value, path, raw string) error {
	if v.Kind() == reflect.String {
		v.SetString(raw)
		return nil
	}
	if raw == "" {
		return nil
	}

	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return &BindError{Key: path, Type: v.Type(), Err: err}
		}
		v.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == durationType {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return &BindError{Key: path, Type: v.Type(), Err: err}
			}
			v.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return &BindError{Key: path, Type: v.Type(), Err: err}
		}
		v.SetInt(i)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return &BindError{Key: path, Type: v.Type(), Err: err}
		}
		v.SetUint(u)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return &BindError{Key: path, Type: v.Type(), Err: err}
		}
		v.SetFloat(f)

	default:
		return &BindError{
			Key:  path,
			Type: v.Type(),
			Err:  fmt.Errorf("unsupported kind %s", v.Kind()),
		}
	}
	return nil
}

// asTextUnmarshaler 检查 v 的地址是否实现 TextUnmarshaler。
// 指针字段在解引用后再检查，避免把 **T 误判为不支持。
func asTextUnmarshaler(v reflect.Value) (encoding.TextUnmarshaler, bool) {
	if v.Kind() == reflect.Pointer || !v.CanAddr() {
		return nil, false
	}
	u, ok := v.Addr().Interface().(encoding.TextUnmarshaler)
	return u, ok
}
