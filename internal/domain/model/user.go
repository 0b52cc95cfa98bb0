package model

import "time"

// ログインサービスが保存する利用者
type UserCredential struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"type:varchar(10)" json:"firstName"`
	LastName  string `gorm:"type:varchar(10)" json:"lastName"`

	//bcryptハッシュだけ保存する（平文・確認用パスワードは保存しない）
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	//ログイン成功時にメモリ上だけでセットする
	Token *string `gorm:"-" json:"token"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

func (UserCredential) TableName() string {
	return "user_credentials"
}
