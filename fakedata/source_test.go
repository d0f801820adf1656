package fakedata

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Xushengqwer/content_faker/myErrors"
)

func TestSourceDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 20; i++ {
		if got, want := a.Username(), b.Username(); got != want {
			t.Fatalf("第 %d 次 Username 不一致: %q vs %q", i, got, want)
		}
		if got, want := a.NumberBetween(1, 1000), b.NumberBetween(1, 1000); got != want {
			t.Fatalf("第 %d 次 NumberBetween 不一致: %d vs %d", i, got, want)
		}
		if got, want := a.Sentence(6), b.Sentence(6); got != want {
			t.Fatalf("第 %d 次 Sentence 不一致: %q vs %q", i, got, want)
		}
	}
}

func TestUniqueNoDuplicates(t *testing.T) {
	s := New(1)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		v, err := s.Unique("user.login", s.Username)
		if err != nil {
			t.Fatalf("第 %d 次 Unique 失败: %v", i, err)
		}
		if _, dup := seen[v]; dup {
			t.Fatalf("出现重复值: %q", v)
		}
		seen[v] = struct{}{}
	}
}

func TestUniqueNamespacesIndependent(t *testing.T) {
	s := New(1)
	// 同一个值在不同命名空间可以各出现一次
	if _, err := s.Unique("a", func() string { return "same" }); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Unique("b", func() string { return "same" }); err != nil {
		t.Fatalf("不同命名空间不应互相影响: %v", err)
	}
}

func TestUniqueExhausted(t *testing.T) {
	s := New(1)
	gen := func() string { return "constant" }
	if _, err := s.Unique("field", gen); err != nil {
		t.Fatalf("首次生成不应失败: %v", err)
	}
	_, err := s.Unique("field", gen)
	if !errors.Is(err, myErrors.ErrUniqueExhausted) {
		t.Fatalf("期望 ErrUniqueExhausted，得到: %v", err)
	}
}

func TestNumberBetweenSwapsBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 50; i++ {
		n := s.NumberBetween(10, 3)
		if n < 3 || n > 10 {
			t.Fatalf("越界: %d", n)
		}
	}
}

func TestBoolWeightedExtremes(t *testing.T) {
	s := New(1)
	for i := 0; i < 20; i++ {
		if s.BoolWeighted(0) {
			t.Fatal("0% 不应返回 true")
		}
		if !s.BoolWeighted(100) {
			t.Fatal("100% 不应返回 false")
		}
	}
}

func TestElementEmptyPool(t *testing.T) {
	s := New(1)
	if id, ok := s.Element(nil); ok || id != 0 {
		t.Fatalf("空池应返回 (0, false)，得到 (%d, %v)", id, ok)
	}
}

func TestElementsClampAndSubset(t *testing.T) {
	s := New(1)
	pool := []uint64{10, 20, 30}

	if got := s.Elements(nil, 2); got != nil {
		t.Fatalf("空池应返回 nil，得到 %v", got)
	}
	got := s.Elements(pool, 10)
	if len(got) != len(pool) {
		t.Fatalf("超出池大小时应收缩到 %d，得到 %d", len(pool), len(got))
	}

	member := map[uint64]struct{}{10: {}, 20: {}, 30: {}}
	seen := make(map[uint64]struct{})
	for _, id := range got {
		if _, ok := member[id]; !ok {
			t.Fatalf("返回了池外元素 %d", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("返回了重复元素 %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNumerifyDigits(t *testing.T) {
	s := New(1)
	pattern := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 20; i++ {
		sku := s.Numerify("######")
		if !pattern.MatchString(sku) {
			t.Fatalf("期望 6 位数字，得到 %q", sku)
		}
	}
}

func TestPriceBetweenBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 50; i++ {
		p := s.PriceBetween(10, 100)
		if p < 10 || p > 100 {
			t.Fatalf("价格越界: %v", p)
		}
	}
}

func TestDateBetweenDegenerateWindow(t *testing.T) {
	s := New(1)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := s.DateBetween(start, start.Add(-time.Hour)); !got.Equal(start) {
		t.Fatalf("窗口退化时应返回起点，得到 %v", got)
	}
}

func TestDateThisYearWithinYear(t *testing.T) {
	s := New(1)
	year := time.Now().Year()
	for i := 0; i < 20; i++ {
		d := s.DateThisYear()
		if d.Year() != year || d.After(time.Now()) {
			t.Fatalf("时间越界: %v", d)
		}
	}
}
