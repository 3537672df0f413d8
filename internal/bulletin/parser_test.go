// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bulletin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tf1999tf/pdf-alert-processor/pkg/types"
)

const fogBulletin = "贵阳龙洞堡机场天气警报\n贵阳龙洞堡机场气象台\n预警发布序号：03\n" +
	"发布时间：2024-06-01 12:00 （北京时）\n大雾黄色预警\n发布人：XX"

func TestParse_FullBulletin(t *testing.T) {
	rec := Parse(fogBulletin)

	assert.Equal(t, "03", rec.WarningNumber)
	assert.Equal(t, []string{
		"贵阳龙洞堡机场天气警报",
		"贵阳龙洞堡机场气象台",
		"预警发布序号：03",
		"发布时间：2024-06-01 12:00 （北京时）",
		"大雾黄色预警。",
	}, rec.Lines())
	assert.Equal(t, "贵阳龙洞堡机场天气警报\n贵阳龙洞堡机场气象台\n预警发布序号：03\n"+
		"发布时间：2024-06-01 12:00 （北京时）\n大雾黄色预警。", rec.Text())
}

func TestParse_OptionalRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.BulletinRecord
	}{
		{
			name: "missing sequence number keeps default",
			text: "贵阳龙洞堡机场天气警报\n发布时间：2024-06-01 12:00（北京时）\n雷暴\n发布人：张三",
			want: types.BulletinRecord{
				Title:         TitlePhrase,
				IssueTimeLine: "发布时间：2024-06-01 12:00（北京时）",
				Body:          "雷暴。",
				WarningNumber: types.DefaultWarningNumber,
			},
		},
		{
			name: "half-width colons and brackets",
			text: "预警发布序号:12\n发布时间: 2024-06-01 08:30 (北京时)\n低能见度 800 米\n发布人:李四",
			want: types.BulletinRecord{
				SequenceLine:  "预警发布序号：12",
				IssueTimeLine: "发布时间：2024-06-01 08:30 (北京时)",
				Body:          "低能见度800米。",
				WarningNumber: "12",
			},
		},
		{
			name: "unicode whitespace before sequence digits",
			text: "预警发布序号：　 07",
			want: types.BulletinRecord{
				SequenceLine:  "预警发布序号：07",
				WarningNumber: "07",
			},
		},
		{
			name: "strict issue time spanning a line break",
			text: "贵阳龙洞堡机场气象台\n发布时间：2024-06-01\n12:00（北京时）\n大风",
			want: types.BulletinRecord{
				Bureau:        BureauPhrase,
				IssueTimeLine: "发布时间：2024-06-01\n12:00（北京时）",
				WarningNumber: types.DefaultWarningNumber,
			},
		},
		{
			name: "nothing recognizable",
			text: "random text\nwithout markers",
			want: types.BulletinRecord{WarningNumber: types.DefaultWarningNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "span up to publisher",
			text: "发布时间：2024-06-01 12:00 （北京时）\r\n大雾\r\n持续\r\n发布人：XX\n发布人：YY",
			want: "大雾\r\n持续",
		},
		{
			name: "no publisher strips phone and fax",
			text: "发布时间：2024-06-01 12:00（北京时）\n雷暴 预警。\n电话：0851-1234\n传真：0851-5678",
			want: "雷暴 预警。\n\n",
		},
		{
			name: "no publisher with fax only",
			text: "发布时间：2024-06-01 12:00（北京时） 大风.\n传真:0851-5678",
			want: "大风.\n",
		},
		{
			name: "no publisher after multibyte header lines",
			text: "贵阳龙洞堡机场天气警报\n贵阳龙洞堡机场气象台\n预警发布序号：03\n" +
				"发布时间：2024-06-01 12:00 （北京时）\n大雾黄色预警\n电话：0851-1234",
			want: "大雾黄色预警\n",
		},
		{
			name: "no issue time marker",
			text: "贵阳龙洞堡机场天气警报\n大雾\n发布人：XX",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBody(tt.text))
		})
	}
}

func TestParse_TierTwoBody(t *testing.T) {
	rec := Parse("发布时间：2024-06-01 12:00（北京时）\n雷暴 预警。\n电话：0851-1234\n传真：0851-5678")
	assert.Equal(t, "雷暴预警。", rec.Body)
}

func TestParse_TierTwoBodyAfterHeader(t *testing.T) {
	rec := Parse("贵阳龙洞堡机场天气警报\n贵阳龙洞堡机场气象台\n预警发布序号：03\n" +
		"发布时间：2024-06-01 12:00 （北京时）\n大雾黄色预警\n传真：0851-5678")
	assert.Equal(t, "大雾黄色预警。", rec.Body)
	assert.Equal(t, "03", rec.WarningNumber)
}

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "大雾黄色预警", want: "大雾黄色预警。"},
		{in: "大雾 黄色\r\n预警.", want: "大雾黄色预警。"},
		{in: "大雾黄色预警。", want: "大雾黄色预警。"},
		{in: "line one\nline two", want: "lineonelinetwo。"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeBody(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, "\n")
			assert.NotContains(t, got, "\r")
		})
	}
}

func TestNormalizeBody_Idempotent(t *testing.T) {
	for _, in := range []string{"大雾黄色预警", "雷暴.", "  a b\nc\r\n。", "已规范。"} {
		once := NormalizeBody(in)
		require.Equal(t, once, NormalizeBody(once), "input %q", in)
	}
}
