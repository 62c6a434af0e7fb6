package model

import (
	"time"
)

type BookStatus string

const (
	BookAvailable   BookStatus = "AVAILABLE"
	BookBorrowed    BookStatus = "BORROWED"
	BookLost        BookStatus = "LOST"
	BookDamaged     BookStatus = "DAMAGED"
	BookMaintenance BookStatus = "MAINTENANCE"
)

func (s BookStatus) Valid() bool {
	switch s {
	case BookAvailable, BookBorrowed, BookLost, BookDamaged, BookMaintenance:
		return true
	}
	return false
}

type RecordStatus string

const (
	RecordActive   RecordStatus = "BORROWED"
	RecordReturned RecordStatus = "RETURNED"
)

type UserStatus string

const (
	UserNormal UserStatus = "NORMAL"
	UserLocked UserStatus = "LOCKED"
)

type Identity string

const (
	IdentityTeacher Identity = "teacher"
	IdentityStudent Identity = "student"
)

type User struct {
	ID              int        `json:"-" db:"id"`
	AccountNumber   string     `json:"accountNumber" db:"account_number"`
	Name            string     `json:"name" db:"name"`
	Identity        Identity   `json:"identity" db:"identity"`
	CardNumber      string     `json:"cardNumber" db:"card_number"`
	Password        string     `json:"-" db:"password"`
	InitialPassword string     `json:"-" db:"initial_password"`
	Role            string     `json:"role" db:"role"`
	Status          UserStatus `json:"status" db:"status"`
	LockTime        *time.Time `json:"lockTime,omitempty" db:"lock_time"`
	LoginFailCount  int        `json:"-" db:"login_fail_count"`
	CreateTime      time.Time  `json:"createTime" db:"create_time"`
	UpdateTime      time.Time  `json:"-" db:"update_time"`
}

type Book struct {
	ID               int        `json:"-" db:"id"`
	CollectionNumber string     `json:"collectionNumber" db:"collection_number"`
	ISBN             string     `json:"isbn" db:"isbn"`
	Title            string     `json:"title" db:"title"`
	Author           string     `json:"author" db:"author"`
	Publisher        string     `json:"publisher" db:"publisher"`
	Location         string     `json:"location" db:"location"`
	Status           BookStatus `json:"status" db:"status"`
	CreateTime       time.Time  `json:"createTime" db:"create_time"`
	UpdateTime       time.Time  `json:"updateTime" db:"update_time"`
}

// BookStatusHistory is append-only; rows are never updated.
type BookStatusHistory struct {
	ID               int        `json:"-" db:"id"`
	CollectionNumber string     `json:"collectionNumber" db:"collection_number"`
	Status           BookStatus `json:"status" db:"status"`
	Operator         string     `json:"operator" db:"operator"`
	OperateTime      time.Time  `json:"operateTime" db:"operate_time"`
}

// BorrowRecord snapshots user and book fields at borrow time so that later
// edits never rewrite history.
type BorrowRecord struct {
	ID               int          `json:"-" db:"id"`
	RecordID         string       `json:"id" db:"record_id"`
	CardNumber       string       `json:"cardNumber" db:"card_number"`
	UserName         string       `json:"userName" db:"user_name"`
	UserIdentity     Identity     `json:"userIdentity" db:"user_identity"`
	AccountNumber    string       `json:"accountNumber" db:"account_number"`
	CollectionNumber string       `json:"collectionNumber" db:"collection_number"`
	BookTitle        string       `json:"bookTitle" db:"book_title"`
	BookAuthor       string       `json:"bookAuthor" db:"book_author"`
	BorrowDate       time.Time    `json:"borrowDate" db:"borrow_date"`
	DueDate          time.Time    `json:"dueDate" db:"due_date"`
	ReturnDate       *time.Time   `json:"returnDate,omitempty" db:"return_date"`
	OverdueDays      int          `json:"overdueDays" db:"overdue_days"`
	Status           RecordStatus `json:"status" db:"status"`
	Operator         string       `json:"operator" db:"operator"`
}

type SystemConfig struct {
	ID          int    `json:"-" db:"id"`
	ConfigKey   string `json:"configKey" db:"config_key"`
	ConfigValue string `json:"configValue" db:"config_value"`
}

const (
	ConfigKeyTeacherBorrowDays = "teacher_borrow_days"
	ConfigKeyStudentBorrowDays = "student_borrow_days"
	ConfigKeyMaxBorrowCount    = "max_borrow_count"

	DefaultTeacherBorrowDays = 90
	DefaultStudentBorrowDays = 60
	DefaultMaxBorrowCount    = 5
)
