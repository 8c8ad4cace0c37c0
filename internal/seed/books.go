package seed

import "librarian/internal/domain"

// Books returns the initial catalog, loaded once into an empty books table.
func Books() []domain.Book {
	return []domain.Book{
		{Title: "Война и мир", Author: "Лев Толстой", Available: true},
		{Title: "Преступление и наказание", Author: "Федор Достоевский", Available: true},
		{Title: "Мастер и Маргарита", Author: "Михаил Булгаков", Available: true},
		{Title: "Анна Каренина", Author: "Лев Толстой", Available: true},
		{Title: "Отцы и дети", Author: "Иван Тургенев", Available: true},
		{Title: "Евгений Онегин", Author: "Александр Пушкин", Available: true},
		{Title: "Герой нашего времени", Author: "Михаил Лермонтов", Available: true},
		{Title: "Обломов", Author: "Иван Гончаров", Available: true},
		{Title: "Доктор Живаго", Author: "Борис Пастернак", Available: true},
		{Title: "Дети Арбата", Author: "Анатолий Рыбаков", Available: true},
		{Title: "Как закалялась сталь", Author: "Николай Островский", Available: true},
		{Title: "Белая гвардия", Author: "Михаил Булгаков", Available: true},
		{Title: "Чапаев", Author: "Дмитрий Фурманов", Available: true},
		{Title: "Двенадцать стульев", Author: "Илья Ильф, Евгений Петров", Available: true},
		{Title: "Золотой телёнок", Author: "Илья Ильф, Евгений Петров", Available: true},
		{Title: "Тихий Дон", Author: "Михаил Шолохов", Available: true},
		{Title: "Жизнь и судьба", Author: "Василий Гроссман", Available: true},
		{Title: "Архипелаг ГУЛАГ", Author: "Александр Солженицын", Available: true},
		{Title: "Записки охотника", Author: "Иван Тургенев", Available: true},
		{Title: "Собачье сердце", Author: "Михаил Булгаков", Available: true},
		{Title: "Республика ШКИД", Author: "Григорий Белых, Алексей Пантелеев", Available: true},
		{Title: "Фауст", Author: "Иоганн Гёте", Available: true},
		{Title: "Капитанская дочка", Author: "Александр Пушкин", Available: true},
		{Title: "Накануне", Author: "Иван Тургенев", Available: true},
		{Title: "По ком звонит колокол", Author: "Эрнест Хемингуэй", Available: true},
		{Title: "Мёртвые души", Author: "Николай Гоголь", Available: true},
		{Title: "Записки из подполья", Author: "Федор Достоевский", Available: true},
		{Title: "Лолита", Author: "Владимир Набоков", Available: true},
		{Title: "Судьба человека", Author: "Михаил Шолохов", Available: true},
		{Title: "Остров Крым", Author: "Василий Аксенов", Available: true},
		{Title: "Пикник на обочине", Author: "Аркадий и Борис Стругацкие", Available: true},
		{Title: "Чевенгур", Author: "Андрей Платонов", Available: true},
		{Title: "Котлован", Author: "Андрей Платонов", Available: true},
		{Title: "Маленький принц", Author: "Антуан де Сент-Экзюпери", Available: true},
		{Title: "Идиот", Author: "Федор Достоевский", Available: true},
		{Title: "Невский проспект", Author: "Николай Гоголь", Available: true},
		{Title: "Чёрный человек", Author: "Сергей Есенин", Available: true},
		{Title: "Тарас Бульба", Author: "Николай Гоголь", Available: true},
		{Title: "Алые паруса", Author: "Александр Грин", Available: true},
		{Title: "Гранатовый браслет", Author: "Александр Куприн", Available: true},
		{Title: "Олеся", Author: "Александр Куприн", Available: true},
		{Title: "Портрет Дориана Грея", Author: "Оскар Уайльд", Available: true},
		{Title: "Старик и море", Author: "Эрнест Хемингуэй", Available: true},
	}
}
