package model

// User 管理员用户模型（整个应用只维护一行记录）
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:20"`
	UserName     string `json:"user_name" gorm:"size:20"`
	PasswordHash string `json:"-" gorm:"size:128"`
}

// Movie 电影条目模型
type Movie struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"size:60"`
	Year  string `json:"year" gorm:"size:4"` // 按文本存储，与展示保持一致
}

// SessionUser 专门用于 Session 存储的用户信息结构
type SessionUser struct {
	ID   int
	Name string
}
