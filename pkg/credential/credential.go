package credential

import (
	"fmt"
	"math/rand"
	"strings"
)

// 去掉了易混淆的 I/O/0/1
const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	credentialLen = 16
	inviteCodeLen = 6
)

// GenCredential 生成 16 位登录凭证，4 位一组，如 A2B3-C4D5-E6F7-G8H9
func GenCredential() string {
	raw := randString(credentialLen)
	parts := make([]string, 0, credentialLen/4)
	for i := 0; i < credentialLen; i += 4 {
		parts = append(parts, raw[i:i+4])
	}
	return strings.Join(parts, "-")
}

// GenInviteCode 生成 6 位邀请码
func GenInviteCode() string {
	return randString(inviteCodeLen)
}

var (
	adjectives = []string{"快乐的", "安静的", "勇敢的", "聪明的", "温柔的", "神秘的", "活泼的", "可爱的"}
	nouns      = []string{"小猫", "小狗", "企鹅", "熊猫", "兔子", "松鼠", "海豚", "小鸟"}
)

// GenNickname 生成随机昵称
func GenNickname() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return fmt.Sprintf("%s%s%d", adj, noun, rand.Intn(1000))
}

func randString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(charset[rand.Intn(len(charset))])
	}
	return b.String()
}
