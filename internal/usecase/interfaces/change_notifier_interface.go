package interfaces

// IChangeNotifier is told after every committed storage mutation so that
// subscribed views can re-read their snapshot.
type IChangeNotifier interface {
	Notify()
}
