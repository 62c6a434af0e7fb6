package model

import "time"

type LoginRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserInfo struct {
		Account string `json:"account"`
		Name    string `json:"name"`
		Role    string `json:"role"`
	} `json:"userInfo"`
}

type UserAddRequest struct {
	AccountNumber string   `json:"accountNumber" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Identity      Identity `json:"identity" validate:"required,oneof=teacher student"`
	CardNumber    string   `json:"cardNumber" validate:"required"`
}

type UserAddResponse struct {
	AccountNumber   string     `json:"accountNumber"`
	Name            string     `json:"name"`
	Identity        Identity   `json:"identity"`
	CardNumber      string     `json:"cardNumber"`
	InitialPassword string     `json:"initialPassword"`
	Role            string     `json:"role"`
	Status          UserStatus `json:"status"`
	CreateTime      time.Time  `json:"createTime"`
}

type ResetPasswordRequest struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	CardNumber    string `json:"cardNumber" validate:"required"`
}

type ResetPasswordResponse struct {
	UserName        string   `json:"userName"`
	UserIdentity    Identity `json:"userIdentity"`
	InitialPassword string   `json:"initialPassword"`
}

type BookAddRequest struct {
	ISBN      string `json:"isbn" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	Location  string `json:"location" validate:"required"`
}

type BookStatusUpdateRequest struct {
	Status   BookStatus `json:"status" validate:"required,oneof=AVAILABLE BORROWED LOST DAMAGED MAINTENANCE"`
	Operator string     `json:"operator" validate:"required"`
}

type BookDetail struct {
	Book
	StatusHistory []BookStatusHistory `json:"statusHistory"`
}

type BorrowRequest struct {
	CardNumber        string   `json:"cardNumber" validate:"required"`
	CollectionNumbers []string `json:"collectionNumbers" validate:"required,min=1"`
	Operator          string   `json:"operator"`
}

// BookSnapshot is the per-book view returned by borrow validation.
type BookSnapshot struct {
	CollectionNumber string     `json:"collectionNumber"`
	Title            string     `json:"title"`
	Author           string     `json:"author"`
	Status           BookStatus `json:"status"`
}

type UserSnapshot struct {
	AccountNumber string   `json:"accountNumber"`
	Name          string   `json:"name"`
	Identity      Identity `json:"identity"`
	CardNumber    string   `json:"cardNumber"`
}

type BorrowValidation struct {
	User    UserSnapshot   `json:"user"`
	Books   []BookSnapshot `json:"books"`
	DueDate time.Time      `json:"dueDate"`
}

type BorrowResponse struct {
	Records []BorrowRecord `json:"records"`
}

type ReturnRequest struct {
	CollectionNumber string `json:"collectionNumber" validate:"required"`
	Operator         string `json:"operator" validate:"required"`
}

type ReturnResponse struct {
	Record BorrowRecord `json:"record"`
}

type MyRecordsStatistics struct {
	CurrentBorrowing int `json:"currentBorrowing"`
	TotalBorrowed    int `json:"totalBorrowed"`
	OverdueCount     int `json:"overdueCount"`
}

type MyRecords struct {
	Statistics MyRecordsStatistics `json:"statistics"`
	Records    []BorrowRecord      `json:"records"`
}

type RecordPage struct {
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	List  []BorrowRecord `json:"list"`
}

type UserPage struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	List  []User `json:"list"`
}

type BookPage struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	List  []Book `json:"list"`
}

type SystemConfigView struct {
	TeacherBorrowDays int `json:"teacherBorrowDays"`
	StudentBorrowDays int `json:"studentBorrowDays"`
	MaxBorrowCount    int `json:"maxBorrowCount"`
}

type SystemConfigUpdateRequest struct {
	TeacherBorrowDays int `json:"teacherBorrowDays" validate:"required"`
	StudentBorrowDays int `json:"studentBorrowDays" validate:"required"`
	MaxBorrowCount    int `json:"maxBorrowCount" validate:"required"`
}

type TopBook struct {
	CollectionNumber string `json:"collectionNumber" db:"collection_number"`
	BookTitle        string `json:"bookTitle" db:"book_title"`
	Author           string `json:"author" db:"author"`
	BorrowCount      int    `json:"borrowCount" db:"borrow_count"`
	Percentage       int    `json:"percentage" db:"-"`
}

type TopBooks struct {
	Dimension string    `json:"dimension"`
	TopBooks  []TopBook `json:"topBooks"`
}

type BookStatusCount struct {
	Status BookStatus `json:"status" db:"status"`
	Count  int        `json:"count" db:"count"`
}
