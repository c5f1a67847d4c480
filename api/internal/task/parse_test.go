package task

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFullResponse(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("Назва: Заміна лампи\nТег: #246\nДедлайн: завтра\nПріоритет: високий\nОпис: Замінити лампу у ліфті")
	require.True(t, ok)
	require.Equal(t, "Заміна лампи", st.Name)
	require.Equal(t, "#246", st.Tag)
	require.Equal(t, "завтра", st.Deadline)
	require.Equal(t, PriorityHigh, st.Priority)
	require.Equal(t, "Замінити лампу у ліфті", st.Desc)
}

func TestParseRejectsMissingName(t *testing.T) {
	p := NewParser()
	_, ok := p.Parse("Тег: #12\nДедлайн: завтра\nПріоритет: високий\nОпис: щось")
	require.False(t, ok)

	_, ok = p.Parse("")
	require.False(t, ok)

	_, ok = p.Parse("просто текст без жодних міток")
	require.False(t, ok)
}

func TestParseDefaults(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("Назва: Fix light\nОпис: replace bulb")
	require.True(t, ok)
	require.Equal(t, "#інше", st.Tag)
	require.Equal(t, "не вказано", st.Deadline)
	require.Equal(t, PriorityNormal, st.Priority)
	require.Equal(t, "replace bulb", st.Desc)
}

func TestParseDescriptionDefault(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("Назва: Перевірка")
	require.True(t, ok)
	require.Equal(t, "(без опису)", st.Desc)
}

func TestParseTagNormalization(t *testing.T) {
	p := NewParser()

	st, ok := p.Parse("Назва: x\nТег: 246")
	require.True(t, ok)
	require.Equal(t, "#246", st.Tag)

	st, ok = p.Parse("Назва: x\nТег: #246")
	require.True(t, ok)
	require.Equal(t, "#246", st.Tag)
}

func TestParsePriorityDerivation(t *testing.T) {
	p := NewParser()
	cases := []struct {
		raw  string
		want Priority
	}{
		{"терміново", PriorityHigh},
		{"високий", PriorityHigh},
		{"зробити сьогодні", PriorityHigh},
		{"негайно!", PriorityHigh},
		{"цього тижня", PriorityMedium},
		{"до кінця тижня", PriorityMedium},
		{"середній", PriorityMedium},
		{"", PriorityNormal},
		{"звичайний", PriorityNormal},
		{"якось потім", PriorityNormal},
	}
	for _, tc := range cases {
		st, ok := p.Parse("Назва: x\nПріоритет: " + tc.raw)
		require.True(t, ok, tc.raw)
		require.Equal(t, tc.want, st.Priority, "priority %q", tc.raw)
	}
}

func TestParseMultilineDescription(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("Назва: Ремонт\nОпис: перший рядок\nдругий рядок\nтретій рядок")
	require.True(t, ok)
	require.Equal(t, "перший рядок\nдругий рядок\nтретій рядок", st.Desc)
}

func TestParseLabelsCaseInsensitive(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("назва: щось\nтег: 7\nпріоритет: ВИСОКИЙ")
	require.True(t, ok)
	require.Equal(t, "щось", st.Name)
	require.Equal(t, "#7", st.Tag)
	require.Equal(t, PriorityHigh, st.Priority)
}

func TestParseSkipsBlankLines(t *testing.T) {
	p := NewParser()
	st, ok := p.Parse("\n\nНазва: щось\n\n\nОпис: опис\n")
	require.True(t, ok)
	require.Equal(t, "щось", st.Name)
	require.Equal(t, "опис", st.Desc)
}
