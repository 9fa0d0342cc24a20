// Package testdata builds sample catalogs for demos and tests.
package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jask/hanzicards/internal/catalog"
)

type word struct {
	term, pinyin, thai string
}

var words = []word{
	{"你好", "Nǐ hǎo", "สวัสดี"},
	{"谢谢", "Xièxiè", "ขอบคุณ"},
	{"再见", "Zàijiàn", "ลาก่อน"},
	{"对不起", "Duìbùqǐ", "ขอโทษ"},
	{"没关系", "Méi guānxì", "ไม่เป็นไร"},
	{"是", "Shì", "ใช่"},
	{"不是", "Bú shì", "ไม่ใช่"},
	{"一", "Yī", "หนึ่ง"},
	{"二", "Èr", "สอง"},
	{"三", "Sān", "สาม"},
	{"四", "Sì", "สี่"},
	{"五", "Wǔ", "ห้า"},
	{"水", "Shuǐ", "น้ำ"},
	{"茶", "Chá", "ชา"},
	{"米饭", "Mǐfàn", "ข้าวสวย"},
	{"苹果", "Píngguǒ", "แอปเปิ้ล"},
	{"香蕉", "Xiāngjiāo", "กล้วย"},
	{"猫", "Māo", "แมว"},
	{"狗", "Gǒu", "หมา"},
	{"鱼", "Yú", "ปลา"},
	{"老师", "Lǎoshī", "ครู"},
	{"学生", "Xuéshēng", "นักเรียน"},
	{"朋友", "Péngyǒu", "เพื่อน"},
	{"妈妈", "Māma", "แม่"},
	{"爸爸", "Bàba", "พ่อ"},
	{"绿色", "Lǜsè", "สีเขียว"},
	{"红色", "Hóngsè", "สีแดง"},
	{"今天", "Jīntiān", "วันนี้"},
	{"明天", "Míngtiān", "พรุ่งนี้"},
	{"昨天", "Zuótiān", "เมื่อวาน"},
}

var titles = []string{"คำทักทาย", "ตัวเลข", "อาหาร", "สัตว์", "ครอบครัว", "สี", "เวลา"}

// Catalog returns a catalog of n lessons with perLesson entries each.
// Entries within a lesson never repeat. A zero seed uses the clock.
func Catalog(seed int64, n, perLesson int) *catalog.Catalog {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if perLesson > len(words) {
		perLesson = len(words)
	}
	rng := rand.New(rand.NewSource(seed))

	c := &catalog.Catalog{Lessons: make([]catalog.Lesson, 0, n)}
	for i := 0; i < n; i++ {
		title := titles[i%len(titles)]
		if i >= len(titles) {
			title = fmt.Sprintf("%s %d", title, i/len(titles)+1)
		}
		l := catalog.Lesson{
			ID:    i + 1,
			Title: title,
			Image: fmt.Sprintf("images/lesson%d.png", i+1),
			Vocab: make([]catalog.VocabEntry, 0, perLesson),
		}
		for _, j := range rng.Perm(len(words))[:perLesson] {
			w := words[j]
			l.Vocab = append(l.Vocab, catalog.VocabEntry{
				Term:          w.term,
				Pronunciation: w.pinyin,
				Translation:   w.thai,
			})
		}
		c.Lessons = append(c.Lessons, l)
	}
	return c
}
