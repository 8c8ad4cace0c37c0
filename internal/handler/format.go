package handler

import (
	"fmt"
	"strings"

	"librarian/internal/domain"
)

// formatBookList renders the full catalog for sending
func formatBookList(books []domain.Book) string {
	if len(books) == 0 {
		return "❌ В базе данных нет ни одной книги."
	}

	var b strings.Builder
	b.WriteString("Список книг:\n")
	for _, book := range books {
		status := "✅ Доступна"
		if !book.Available {
			status = fmt.Sprintf("❌ Занята (Взял: %s)", book.Borrower)
		}
		fmt.Fprintf(&b, "📖 %s - %s (%s)\n", book.Title, book.Author, status)
	}
	return b.String()
}

// formatBookStatus renders a single find result
func formatBookStatus(book *domain.Book) string {
	status := "✅ Доступна"
	if !book.Available {
		status = fmt.Sprintf("❌ Зарезервирована (Резерв: %s)", book.Borrower)
	}
	return fmt.Sprintf("📖 %s - %s\nСтатус: %s", book.Title, book.Author, status)
}

// formatProfile renders the personal cabinet view
func formatProfile(user *domain.User) string {
	borrowed := "Нет взятых книг"
	if len(user.Borrowed) > 0 {
		borrowed = strings.Join(user.Borrowed, ", ")
	}

	return fmt.Sprintf(
		"👤 Ваш профиль:\n\nИмя: %s\nФамилия: %s\n\nЗарезервированные книги:\n%s",
		user.Name, user.Surname, borrowed,
	)
}
