package auth

import (
	"log"
	"os"
)

// defaultAdminPassword はADMIN_PASSWORD未設定時に使用される既定値です。
const defaultAdminPassword = "admin123"

// VerifyFunc は管理者クレデンシャルを検証する関数です。
// 認証方式を差し替えられるよう、Gateには検証関数を注入します。
type VerifyFunc func(password string) bool

// Gate は管理者向け操作を守る共有シークレットのゲートです。
type Gate struct {
	verify VerifyFunc
}

// NewGate は検証関数を指定してGateを作成します。
func NewGate(verify VerifyFunc) *Gate {
	return &Gate{verify: verify}
}

// NewGateFromEnv はADMIN_PASSWORD環境変数を共有シークレットとするGateを作成します。
// 未設定の場合は既定のパスワードを使用します。
func NewGateFromEnv() *Gate {
	secret := os.Getenv("ADMIN_PASSWORD")
	if secret == "" {
		log.Println("warning: ADMIN_PASSWORD が未設定のため、既定の管理者パスワードを使用します")
		secret = defaultAdminPassword
	}
	return NewGate(func(password string) bool {
		return password == secret
	})
}

// Authenticate は候補パスワードを検証します。空文字列は常に拒否します。
func (g *Gate) Authenticate(password string) bool {
	if password == "" {
		return false
	}
	return g.verify(password)
}
