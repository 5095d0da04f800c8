package layout

// Операции над упорядоченными списками документа (секции, блоки, фото в
// блоке). Все операции возвращают новый срез и не изменяют исходный;
// перемещение за границу списка - no-op.

// MoveUp меняет местами элемент i с предыдущим. Для первого элемента
// (и индекса вне диапазона) возвращает исходный срез без изменений.
func MoveUp[T any](items []T, i int) []T {
	if i <= 0 || i >= len(items) {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i-1], out[i] = out[i], out[i-1]
	return out
}

// MoveDown меняет местами элемент i со следующим. Для последнего элемента
// (и индекса вне диапазона) возвращает исходный срез без изменений.
func MoveDown[T any](items []T, i int) []T {
	if i < 0 || i >= len(items)-1 {
		return items
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], out[i+1] = out[i+1], out[i]
	return out
}

// InsertAt вставляет элемент на позицию i; индекс ограничивается
// диапазоном [0, len].
func InsertAt[T any](items []T, i int, item T) []T {
	if i < 0 {
		i = 0
	}
	if i > len(items) {
		i = len(items)
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	out = append(out, items[i:]...)
	return out
}

// RemoveAt удаляет элемент на позиции i; индекс вне диапазона - no-op.
func RemoveAt[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out
}
