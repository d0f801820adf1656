package fakedata

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Xushengqwer/content_faker/myErrors"
)

// maxUniqueAttempts 唯一值生成的尝试上限。超过后返回 ErrUniqueExhausted，
// 避免在候选空间耗尽时无限重试。
const maxUniqueAttempts = 10000

// Source 是有状态的随机字段源：封装一个带种子的 gofakeit 实例，
// 并按逻辑字段名独立追踪唯一值（例如 "user.login" 与 "term.category"
// 互不影响）。所有随机抽取都经过同一个 faker，因而给定同一种子和
// 同一调用序列，输出完全可复现。
//
// Source 仅限单次运行内单 goroutine 使用，不做并发保护。
type Source struct {
	faker *gofakeit.Faker
	used  map[string]map[string]struct{}
}

// New 创建随机字段源。seed 为 0 时使用随机种子（默认行为），
// 非零时完全确定。
func New(seed int64) *Source {
	return &Source{
		faker: gofakeit.New(seed),
		used:  make(map[string]map[string]struct{}),
	}
}

// Unique 在 field 的命名空间内生成一个未出现过的值。
// gen 会被反复调用直到产出新值；尝试超过上限时返回 ErrUniqueExhausted。
func (s *Source) Unique(field string, gen func() string) (string, error) {
	seen, ok := s.used[field]
	if !ok {
		seen = make(map[string]struct{})
		s.used[field] = seen
	}

	for i := 0; i < maxUniqueAttempts; i++ {
		v := gen()
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			return v, nil
		}
	}
	return "", fmt.Errorf("字段 %q 连续 %d 次未能生成新的唯一值: %w",
		field, maxUniqueAttempts, myErrors.ErrUniqueExhausted)
}

// Username 登录名。
func (s *Source) Username() string { return s.faker.Username() }

// Password 含大小写字母与数字的 16 位密码。
func (s *Source) Password() string {
	return s.faker.Password(true, true, true, false, false, 16)
}

// URL 随机 URL。
func (s *Source) URL() string { return s.faker.URL() }

// Email 随机邮箱。
func (s *Source) Email() string { return s.faker.Email() }

// FirstName 名。
func (s *Source) FirstName() string { return s.faker.FirstName() }

// LastName 姓。
func (s *Source) LastName() string { return s.faker.LastName() }

// FullName 姓名。
func (s *Source) FullName() string { return s.faker.Name() }

// Phrase 一条口号式短语，用作标题 / 术语名。
func (s *Source) Phrase() string { return s.faker.Slogan() }

// Paragraph 一段 3~5 句的随机文本。
func (s *Source) Paragraph() string {
	return s.faker.Paragraph(1, s.NumberBetween(3, 5), s.NumberBetween(8, 16), " ")
}

// Sentence 指定词数的一句话。
func (s *Source) Sentence(words int) string { return s.faker.Sentence(words) }

// Numerify 把模式中的 '#' 替换为随机数字，例如 "######" -> "834012"。
func (s *Source) Numerify(pattern string) string { return s.faker.Numerify(pattern) }

// Bool 等概率布尔值。
func (s *Source) Bool() bool { return s.BoolWeighted(50) }

// BoolWeighted 以 pct% 的概率返回 true。pct 取值 [0,100]。
func (s *Source) BoolWeighted(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return s.faker.Number(1, 100) <= pct
}

// NumberBetween 闭区间随机整数。min > max 时两端互换。
func (s *Source) NumberBetween(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return s.faker.Number(min, max)
}

// PriceBetween 区间随机价格（两位小数）。
func (s *Source) PriceBetween(min, max float64) float64 {
	return s.faker.Price(min, max)
}

// Element 从 ID 池中等概率取一个元素。池为空时返回 (0, false)，
// 调用方据此省略引用，绝不凭空编造 ID。
func (s *Source) Element(pool []uint64) (uint64, bool) {
	if len(pool) == 0 {
		return 0, false
	}
	return pool[s.faker.Number(0, len(pool)-1)], true
}

// Elements 从 ID 池中不放回地取 n 个元素。n 超过池大小时收缩到池大小
// （既定策略：收缩而非报错）。返回切片的顺序由随机源决定。
func (s *Source) Elements(pool []uint64, n int) []uint64 {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	// 在副本上做部分 Fisher-Yates 洗牌，洗牌用的随机数同样出自带种子的
	// faker，保证整次运行可复现。
	tmp := make([]uint64, len(pool))
	copy(tmp, pool)
	for i := 0; i < n; i++ {
		j := s.faker.Number(i, len(tmp)-1)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:n]
}

// ElementStrings 与 Elements 相同，但作用于字符串候选集（替换变量词表）。
func (s *Source) ElementStrings(candidates []string, n int) []string {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	tmp := make([]string, len(candidates))
	copy(tmp, candidates)
	for i := 0; i < n; i++ {
		j := s.faker.Number(i, len(tmp)-1)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:n]
}

// DateThisYear 今年年初至今的随机时间。
func (s *Source) DateThisYear() time.Time {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return s.faker.DateRange(start, now)
}

// DateThisCentury 2000-01-01 至今的随机时间。
func (s *Source) DateThisCentury() time.Time {
	now := time.Now()
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, now.Location())
	return s.faker.DateRange(start, now)
}

// DateBetween 给定窗口内的随机时间。end 早于 start 时直接返回 start。
func (s *Source) DateBetween(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	return s.faker.DateRange(start, end)
}
