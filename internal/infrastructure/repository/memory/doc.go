// Package memory реализует репозитории в памяти.
// Используется в режиме app.mode=mock и в тестах use case'ов.
// Все операции потокобезопасны; сущности хранятся как снимки и возвращаются копиями.
package memory
