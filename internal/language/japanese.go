package language

// Japanese grids hold single kanji. A lone kanji is not a meaningful word,
// so the provider carries a curated list of 2-3 kanji compounds that the
// board generator seeds grids with; every compound is spelled entirely
// from the grid inventory below.

type japanese struct{}

var japaneseLetters = []rune("日月火水木金土山川田人口車門雨花石犬虫魚天空気風海林森池岩星光雲電糸貝玉王音力手足目耳学校先生本文字")

var japaneseCompounds = []string{
	"日本", "火山", "学校", "先生", "学生",
	"天気", "電気", "電車", "電力", "人口",
	"花火", "風車", "風力", "空気", "海水",
	"月光", "星空", "水田", "森林", "山林",
	"川口", "金魚", "木星", "火星", "水星",
	"金星", "土星", "目玉", "手足", "文字",
	"人力車", "天文学",
}

func (j *japanese) Language() Language { return Japanese }

func (j *japanese) Letters() []rune {
	return japaneseLetters
}

// Kanji have no positional variants
func (j *japanese) Normalize(r rune) rune { return r }

func (j *japanese) Denormalize(r rune, final bool) rune { return r }

func (j *japanese) Compounds() []string {
	return japaneseCompounds
}
